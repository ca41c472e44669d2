package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"petcare-api/internal/adapters/storage/postgres"
	"petcare-api/internal/adapters/storage/sqlite"
	"petcare-api/internal/adapters/storage/sqlstore"
	"petcare-api/internal/platform/config"
	"petcare-api/internal/platform/logger"
	"petcare-api/internal/router"

	"github.com/rs/zerolog"
)

// @title petcare-api
// @version 1.0
// @description CRUD de clientes, mascotas, servicios y contratos.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("could not load config")
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, dialect, err := openDB(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("dialect", dialect.String()).Msg("could not open database")
	}
	defer db.Close()

	if err := sqlstore.EnsureSchema(ctx, db, dialect); err != nil {
		log.Fatal().Err(err).Msg("could not ensure schema")
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			DB:             db,
			Dialect:        dialect,
			Logger:         &log,
			AllowedOrigins: cfg.AllowedOrigins(),
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("dialect", dialect.String()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openDB usa Postgres si hay DATABASE_URL; si no, SQLite local.
func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, sqlstore.Dialect, error) {
	if cfg.UsesPostgres() {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		return db, sqlstore.Postgres, err
	}
	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	return db, sqlstore.SQLite, err
}
