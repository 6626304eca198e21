package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	v1 "github.com/rentfolio/rentfolio/internal/api/v1"
	"github.com/rentfolio/rentfolio/internal/auth"
	"github.com/rentfolio/rentfolio/internal/config"
	"github.com/rentfolio/rentfolio/internal/server"
	"github.com/rentfolio/rentfolio/internal/store/postgres"
	redisstore "github.com/rentfolio/rentfolio/internal/store/redis"
	"github.com/rentfolio/rentfolio/internal/store/sqlite"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	// Initialize structured logging from environment.
	logLevel := os.Getenv("RENTFOLIO_LOG_LEVEL")
	level, parseErr := zerolog.ParseLevel(logLevel)
	if parseErr != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logFormat := os.Getenv("RENTFOLIO_LOG_FORMAT")
	if logFormat == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	ctx := context.Background()

	// Load configuration from environment.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open the configured storage driver.
	var store v1.DataStore
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		if cfg.Storage.MaxConns < 0 || cfg.Storage.MaxConns > math.MaxInt32 {
			return fmt.Errorf("storage max_conns %d out of int32 range", cfg.Storage.MaxConns)
		}
		pg, pgErr := postgres.New(ctx, cfg.Storage.DSN(), int32(cfg.Storage.MaxConns)) //nolint:gosec // bounds checked above
		if pgErr != nil {
			return pgErr
		}
		defer pg.Close()
		store = pg
	default:
		db, dbErr := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if dbErr != nil {
			return dbErr
		}
		defer func() { _ = db.Close() }()
		store = db
	}

	// Session registry: Redis when configured, in-process otherwise.
	var sessions auth.SessionStore
	if cfg.Redis.Addr != "" {
		redisSessions, redisErr := redisstore.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if redisErr != nil {
			return redisErr
		}
		defer redisSessions.Close()
		sessions = redisSessions
	} else {
		log.Warn().Msg("no Redis address configured, using in-process session registry")
		sessions = auth.NewMemorySessions()
	}

	// Create auth service.
	authSvc := auth.NewService(store.Users(), store.Tenants(), sessions, cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	// Graceful shutdown on SIGINT / SIGTERM.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create HTTP server with all routes wired.
	srv := server.New(ctx, cfg, store, authSvc)

	// Start server in background goroutine.
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("driver", cfg.Storage.Driver).Msg("starting server")
		if startErr := srv.Start(ctx); startErr != nil {
			log.Error().Err(startErr).Msg("server error")
		}
	}()

	// Block until shutdown signal.
	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}

	log.Info().Msg("stopped")
	return nil
}
