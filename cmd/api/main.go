package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/storesage/internal/domain/repository"
	"github.com/jhoicas/storesage/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/storesage/internal/infrastructure/pdf"
	"github.com/jhoicas/storesage/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/storesage/internal/interfaces/http"
	"github.com/jhoicas/storesage/pkg/config"
	"github.com/jhoicas/storesage/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("inicializar almacenamiento")
	}
	defer store.Close()

	// PDF: reporte de reposición
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	deps := httpRouter.NewRouterDeps(store, pdfGenerator, time.Now, cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.Swagger {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "StoreSage API",
		}))
	}

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore elige la implementación del almacén según STORAGE_DRIVER.
// En PostgreSQL aplica el esquema antes de servir peticiones.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	if cfg.Storage.Driver != repository.DriverPostgres {
		return memory.NewStore(), nil
	}
	store, err := postgres.Open(ctx, cfg.DB, cfg.App.Name)
	if err != nil {
		return nil, err
	}
	return store, nil
}
