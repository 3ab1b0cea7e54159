// migrate aplica las migraciones pendientes del esquema IEC sobre la base configurada
// (DATABASE_URL o DB_*) y termina. Útil cuando DB_AUTO_MIGRATE=false.
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/iec-registro/internal/infrastructure/postgres"
	"github.com/jhoicas/iec-registro/pkg/config"
	"github.com/jhoicas/iec-registro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.DB.Driver != config.DriverPostgres {
		log.Error().Str("driver", cfg.DB.Driver).Msg("las migraciones solo aplican al driver postgres")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
		log.Error().Err(err).Msg("migraciones fallidas")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Msg("esquema al día")
}
