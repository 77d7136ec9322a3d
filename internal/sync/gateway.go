package sync

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	stdsync "sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/storesage/internal/sync/mirror"
	"github.com/jhoicas/storesage/internal/sync/remote"
)

// Remote operaciones de la API que usa el gateway. Lo implementa *remote.Client.
type Remote interface {
	List(ctx context.Context, resource string) ([]map[string]any, error)
	Get(ctx context.Context, resource, id string) (map[string]any, error)
	Create(ctx context.Context, resource string, payload map[string]any) (map[string]any, error)
	Update(ctx context.Context, resource, id string, payload map[string]any) (map[string]any, error)
	MarkReturned(ctx context.Context, id string) (map[string]any, error)
	Delete(ctx context.Context, resource, id string) error
	Import(ctx context.Context, payload remote.ImportPayload) error
}

var _ Remote = (*remote.Client)(nil)

// Result respuesta de una operación. Offline indica que se sirvió o sintetizó desde el espejo.
type Result struct {
	Status  int
	Record  mirror.Record
	Records []mirror.Record
	Offline bool
}

// Gateway punto único de acceso a datos del cliente.
//
// Cada operación intenta primero la API. Solo un error de transporte (remote.ErrTransport)
// activa el camino offline; los errores de aplicación (4xx/5xx) se propagan tal cual.
type Gateway struct {
	remote Remote
	mirror mirror.Store
	log    zerolog.Logger
	now    func() time.Time
	newID  func() (string, error)

	// mu serializa los ciclos leer-modificar-escribir del espejo de esta instancia.
	mu stdsync.Mutex
}

// Option configura el gateway.
type Option func(*Gateway)

// WithLogger registra los fallbacks a nivel Warn.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Gateway) { g.log = log }
}

// WithClock reemplaza time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// WithIDSource reemplaza la fuente de IDs offline.
func WithIDSource(newID func() (string, error)) Option {
	return func(g *Gateway) { g.newID = newID }
}

// NewGateway construye el gateway. Por defecto los IDs offline son UUIDv7: ordenados por tiempo
// y monótonos dentro del proceso, así dos altas en el mismo milisegundo no colisionan.
func NewGateway(r Remote, store mirror.Store, opts ...Option) *Gateway {
	g := &Gateway{
		remote: r,
		mirror: store,
		log:    zerolog.Nop(),
		now:    time.Now,
		newID:  newTimeOrderedID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func newTimeOrderedID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func isTransport(err error) bool { return errors.Is(err, remote.ErrTransport) }

// List lee la colección de la API y la guarda en el espejo. Sin conexión devuelve el espejo.
func (g *Gateway) List(ctx context.Context, kind Kind) (*Result, error) {
	records, err := g.remote.List(ctx, kind.resource())
	if err == nil {
		g.mu.Lock()
		saveErr := mirror.SaveCollection(ctx, g.mirror, kind.MirrorKey(), records)
		g.mu.Unlock()
		if saveErr != nil {
			g.log.Warn().Err(saveErr).Str("kind", string(kind)).Msg("no se pudo actualizar el espejo local")
		}
		return &Result{Status: http.StatusOK, Records: records}, nil
	}
	if !isTransport(err) {
		return nil, err
	}

	g.log.Warn().Err(err).Str("kind", string(kind)).Msg("API no disponible, leyendo espejo local")
	g.mu.Lock()
	defer g.mu.Unlock()
	cached, loadErr := mirror.LoadCollection(ctx, g.mirror, kind.MirrorKey())
	if loadErr != nil {
		return nil, fmt.Errorf("%w (espejo: %v)", err, loadErr)
	}
	return &Result{Status: http.StatusOK, Records: cached, Offline: true}, nil
}

// Get consulta un registro. Sin fallback offline.
func (g *Gateway) Get(ctx context.Context, kind Kind, id string) (*Result, error) {
	rec, err := g.remote.Get(ctx, kind.resource(), id)
	if err != nil {
		return nil, err
	}
	return &Result{Status: http.StatusOK, Record: rec}, nil
}

// Create da de alta en la API. Sin conexión sintetiza el registro (id, createdAt, updatedAt),
// lo agrega al espejo y responde 201 como si la API lo hubiera creado.
func (g *Gateway) Create(ctx context.Context, kind Kind, payload mirror.Record) (*Result, error) {
	rec, err := g.remote.Create(ctx, kind.resource(), payload)
	if err == nil {
		return &Result{Status: http.StatusCreated, Record: rec}, nil
	}
	if !isTransport(err) {
		return nil, err
	}

	g.log.Warn().Err(err).Str("kind", string(kind)).Msg("API no disponible, alta en espejo local")
	g.mu.Lock()
	defer g.mu.Unlock()

	records, loadErr := mirror.LoadCollection(ctx, g.mirror, kind.MirrorKey())
	if loadErr != nil {
		return nil, fmt.Errorf("%w (espejo: %v)", err, loadErr)
	}
	id, idErr := g.newID()
	if idErr != nil {
		return nil, fmt.Errorf("sync: generar id offline: %w", idErr)
	}
	ts := g.timestamp()
	synth := make(mirror.Record, len(payload)+3)
	for k, v := range payload {
		synth[k] = v
	}
	synth["id"] = id
	synth["createdAt"] = ts
	synth["updatedAt"] = ts

	records = append(records, synth)
	if saveErr := mirror.SaveCollection(ctx, g.mirror, kind.MirrorKey(), records); saveErr != nil {
		return nil, fmt.Errorf("%w (espejo: %v)", err, saveErr)
	}
	return &Result{Status: http.StatusCreated, Record: synth, Offline: true}, nil
}

// Update edita en la API. Sin conexión mezcla el payload sobre el registro del espejo; si el
// registro no está en el espejo se devuelve el error de transporte original.
func (g *Gateway) Update(ctx context.Context, kind Kind, id string, payload mirror.Record) (*Result, error) {
	rec, err := g.remote.Update(ctx, kind.resource(), id, payload)
	if err == nil {
		return &Result{Status: http.StatusOK, Record: rec}, nil
	}
	if !isTransport(err) {
		return nil, err
	}
	return g.updateOffline(ctx, kind, id, err, func(rec mirror.Record) {
		for k, v := range payload {
			rec[k] = v
		}
	})
}

// MarkReturned marca un préstamo como devuelto. Sin conexión equivale a Update con returned=1
// y, como hace el servidor, fija returnDate solo si el registro no la tenía.
func (g *Gateway) MarkReturned(ctx context.Context, id string) (*Result, error) {
	rec, err := g.remote.MarkReturned(ctx, id)
	if err == nil {
		return &Result{Status: http.StatusOK, Record: rec}, nil
	}
	if !isTransport(err) {
		return nil, err
	}
	return g.updateOffline(ctx, KindBorrowed, id, err, func(rec mirror.Record) {
		rec["returned"] = 1
		if d, _ := rec["returnDate"].(string); d == "" {
			rec["returnDate"] = g.timestamp()
		}
	})
}

// Delete elimina en la API. Sin fallback offline.
func (g *Gateway) Delete(ctx context.Context, kind Kind, id string) (*Result, error) {
	if err := g.remote.Delete(ctx, kind.resource(), id); err != nil {
		return nil, err
	}
	return &Result{Status: http.StatusNoContent}, nil
}

// updateOffline aplica apply sobre una copia del registro del espejo y la persiste.
func (g *Gateway) updateOffline(ctx context.Context, kind Kind, id string, transportErr error, apply func(rec mirror.Record)) (*Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	records, loadErr := mirror.LoadCollection(ctx, g.mirror, kind.MirrorKey())
	if loadErr != nil {
		return nil, fmt.Errorf("%w (espejo: %v)", transportErr, loadErr)
	}
	idx := indexByID(records, id)
	if idx < 0 {
		return nil, transportErr
	}

	g.log.Warn().Err(transportErr).Str("kind", string(kind)).Str("id", id).Msg("API no disponible, edición en espejo local")
	merged := make(mirror.Record, len(records[idx])+2)
	for k, v := range records[idx] {
		merged[k] = v
	}
	apply(merged)
	merged["id"] = id
	merged["updatedAt"] = g.timestamp()
	records[idx] = merged

	if saveErr := mirror.SaveCollection(ctx, g.mirror, kind.MirrorKey(), records); saveErr != nil {
		return nil, fmt.Errorf("%w (espejo: %v)", transportErr, saveErr)
	}
	return &Result{Status: http.StatusOK, Record: merged, Offline: true}, nil
}

func (g *Gateway) timestamp() string {
	return g.now().UTC().Format(time.RFC3339Nano)
}

func indexByID(records []mirror.Record, id string) int {
	for i, r := range records {
		if v, ok := r["id"].(string); ok && v == id {
			return i
		}
	}
	return -1
}
