package sync

import (
	"context"
	stdsync "sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/storesage/internal/sync/mirror"
	"github.com/jhoicas/storesage/internal/sync/remote"
)

// ImportState marca si ya se intentó la importación. La crea quien arranca el cliente;
// un mismo valor solo permite un intento aunque falle.
type ImportState struct {
	mu        stdsync.Mutex
	attempted bool
}

// Attempted indica si Run ya se ejecutó con este estado.
func (s *ImportState) Attempted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempted
}

// begin marca el intento; false si ya estaba marcado.
func (s *ImportState) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempted {
		return false
	}
	s.attempted = true
	return true
}

// Importer vuelca el espejo local en el servidor vía POST /api/init.
type Importer struct {
	remote Remote
	mirror mirror.Store
	log    zerolog.Logger
}

// NewImporter construye el importador.
func NewImporter(r Remote, store mirror.Store, log zerolog.Logger) *Importer {
	return &Importer{remote: r, mirror: store, log: log}
}

// Run importa una sola vez por estado. Los errores se registran y no se propagan ni reintentan:
// el servidor ignora IDs repetidos, así que un intento posterior con otro estado es inocuo.
func (im *Importer) Run(ctx context.Context, state *ImportState) {
	if !state.begin() {
		return
	}

	var payload remote.ImportPayload
	for _, kind := range Kinds {
		records, err := mirror.LoadCollection(ctx, im.mirror, kind.MirrorKey())
		if err != nil {
			im.log.Error().Err(err).Str("kind", string(kind)).Msg("importación: no se pudo leer el espejo local")
			return
		}
		switch kind {
		case KindProducts:
			payload.Products = records
		case KindBorrowed:
			payload.Borrowed = records
		case KindReminders:
			payload.Reminders = records
		}
	}

	total := len(payload.Products) + len(payload.Borrowed) + len(payload.Reminders)
	if total == 0 {
		im.log.Debug().Msg("importación: espejo local vacío, nada que enviar")
		return
	}

	if err := im.remote.Import(ctx, payload); err != nil {
		im.log.Error().Err(err).Int("records", total).Msg("importación inicial fallida")
		return
	}
	im.log.Info().
		Int("products", len(payload.Products)).
		Int("borrowed", len(payload.Borrowed)).
		Int("reminders", len(payload.Reminders)).
		Msg("importación inicial completada")
}
