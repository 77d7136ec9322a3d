// storesage es el cliente de línea de comandos del inventario. Opera contra la API y, si no hay
// conexión, contra el espejo local; al arrancar vuelca el espejo en el servidor (importación inicial).
//
// Uso: storesage [flags globales] <recurso> <acción> [flags] [args]
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"

	isync "github.com/jhoicas/storesage/internal/sync"
	"github.com/jhoicas/storesage/internal/sync/mirror"
	"github.com/jhoicas/storesage/internal/sync/remote"
	"github.com/jhoicas/storesage/pkg/config"
	"github.com/jhoicas/storesage/pkg/logger"
)

const usage = `Uso: storesage [flags] <comando>

Comandos:
  bootstrap                         importa el espejo local en el servidor
  products  list|get|add|update|delete
  borrowed  list|get|add|return
  reminders list|get|add|delete
  mirror    clear                   borra las colecciones del espejo local

Flags globales:
`

// errUsage comando mal formado; main responde con código 2.
var errUsage = errors.New("uso incorrecto")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// app dependencias armadas a partir de la configuración.
type app struct {
	gateway  *isync.Gateway
	importer *isync.Importer
	mirror   mirror.Store
	log      *logger.Logger
	out      io.Writer
	errOut   io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("storesage", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	fs.String("api-url", "", "URL base de la API (SYNC_API_URL)")
	fs.Duration("timeout", 0, "timeout por petición (SYNC_TIMEOUT)")
	fs.String("mirror", "", "espejo local: file, memory o redis (SYNC_MIRROR_DRIVER)")
	fs.String("mirror-path", "", "archivo del espejo cuando --mirror=file (SYNC_MIRROR_PATH)")
	fs.String("log-level", "", "nivel de log (LOG_LEVEL)")
	noBootstrap := fs.Bool("no-bootstrap", false, "no importar el espejo local al arrancar")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	cfg, err := config.LoadWithFlags(fs, map[string]string{
		"SYNC_API_URL":       "api-url",
		"SYNC_TIMEOUT":       "timeout",
		"SYNC_MIRROR_DRIVER": "mirror",
		"SYNC_MIRROR_PATH":   "mirror-path",
		"LOG_LEVEL":          "log-level",
	})
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: stderr})

	store, closeMirror, err := openMirror(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeMirror()

	client := remote.NewClient(cfg.Sync.APIBaseURL, cfg.Sync.Timeout)
	a := &app{
		gateway:  isync.NewGateway(client, store, isync.WithLogger(log.Zerolog())),
		importer: isync.NewImporter(client, store, log.Zerolog()),
		mirror:   store,
		log:      log,
		out:      stdout,
		errOut:   stderr,
	}

	cmd := fs.Args()
	if !*noBootstrap && cmd[0] != "bootstrap" && cmd[0] != "mirror" {
		a.importer.Run(ctx, &isync.ImportState{})
	}
	return a.dispatch(ctx, cmd)
}

// openMirror construye el espejo según SYNC_MIRROR_DRIVER. La función devuelta libera recursos.
func openMirror(ctx context.Context, cfg *config.Config, log *logger.Logger) (mirror.Store, func(), error) {
	switch cfg.Sync.MirrorDriver {
	case "memory":
		return mirror.NewMemoryStore(), func() {}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("conectar a Redis %s: %w", cfg.Redis.Addr, err)
		}
		log.Debug().Str("addr", cfg.Redis.Addr).Str("prefix", cfg.Sync.MirrorPrefix).Msg("espejo local en Redis")
		return mirror.NewRedisStore(client, cfg.Sync.MirrorPrefix), func() { client.Close() }, nil
	default:
		fs := mirror.NewFileStore(cfg.Sync.MirrorPath)
		log.Debug().Str("path", fs.Path()).Msg("espejo local en archivo")
		return fs, func() {}, nil
	}
}
