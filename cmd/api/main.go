package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/iec-registro/internal/application/usecase"
	"github.com/jhoicas/iec-registro/internal/domain/iec"
	"github.com/jhoicas/iec-registro/internal/domain/repository"
	"github.com/jhoicas/iec-registro/internal/infrastructure/apisetu"
	"github.com/jhoicas/iec-registro/internal/infrastructure/memory"
	"github.com/jhoicas/iec-registro/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/iec-registro/internal/interfaces/http"
	"github.com/jhoicas/iec-registro/pkg/config"
	"github.com/jhoicas/iec-registro/pkg/logger"
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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		companyRepo      repository.CompanyRepository
		registrationRepo repository.RegistrationRepository
		db               httpRouter.Pinger
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		companyRepo, registrationRepo, db = store.Companies(), store.Registrations(), store
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
		}
		companyRepo = postgres.NewCompanyRepository(pool)
		registrationRepo = postgres.NewRegistrationRepository(pool)
		db = pool
	}

	if cfg.APISetu.APIKey == "" || cfg.APISetu.ClientID == "" {
		log.Warn().Msg("APISETU_API_KEY o APISETU_CLIENT_ID vacíos: la autoridad rechazará las verificaciones")
	}
	verifier := apisetu.NewClient(apisetu.Config{
		BaseURL:  cfg.APISetu.BaseURL,
		APIKey:   cfg.APISetu.APIKey,
		ClientID: cfg.APISetu.ClientID,
		Timeout:  cfg.APISetu.Timeout,
	}, nil, log.Component("apisetu"))

	registrationUC := usecase.NewRegistrationUseCase(
		companyRepo, registrationRepo, verifier,
		iec.NewULIDGenerator(), log.Component("registration"),
	)

	app := httpRouter.NewApp(cfg.App.Name, log.Component("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "IEC Registration API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegistrationUC: registrationUC,
		DB:             db,
		ServiceName:    cfg.App.Name,
		Log:            log.Component("http"),
	})

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
