package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"subs_dashboard/internal/config"
	httpGateway "subs_dashboard/internal/gateways/http"
	"subs_dashboard/internal/repository/postgres"
	"subs_dashboard/internal/scheduler"
	usecaseInternal "subs_dashboard/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"

	defaultMigrations = "file://migrations"
)

func main() {
	cfg := config.LoadConfig()
	log := setupLogger(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("subs dashboard stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the service and blocks until SIGINT/SIGTERM; deferred cleanup runs on every return path
func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting subs dashboard", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	if err := runMigrations(cfg.Pg.DSN()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.Pg.DSN())
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("storage is unreachable: %w", err)
	}
	log.Debug("init database")

	sr := postgres.NewSubRepository(pool)
	cr := postgres.NewCategoryRepository(pool)
	ur := postgres.NewUserRepository(pool)

	auth := usecaseInternal.NewAuth(ur, cfg.Auth.SessionTTL)
	renewal := usecaseInternal.NewRenewal(sr)

	jobs := scheduler.New(renewal, auth, log, cfg.Scheduler.RollSpec, cfg.Scheduler.PurgeSpec)
	jobs.RunOnce(ctx)
	if err := jobs.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer jobs.Stop()

	useCases := httpGateway.UseCases{
		Sub:       usecaseInternal.NewSubscription(sr, cr),
		Category:  usecaseInternal.NewCategory(cr),
		Dashboard: usecaseInternal.NewDashboard(sr),
		Auth:      auth,
	}

	server := httpGateway.New(useCases,
		*cfg,
		log,
		httpGateway.WithHost(cfg.Server.Host),
		httpGateway.WithPort(uint16(cfg.Server.Port)),
		httpGateway.WithLogger(log),
		httpGateway.WithShutdownTimeout(cfg.Server.Timeout),
	)

	log.Info("starting server", slog.String("address", server.Addr()))
	return server.Run(ctx)
}

// runMigrations applies pending migrations from MIGRATIONS_PATH (file://migrations by default)
func runMigrations(dsn string) error {
	src := os.Getenv("MIGRATIONS_PATH")
	if src == "" {
		src = defaultMigrations
	}

	m, err := migrate.New(src, dsn)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch strings.ToLower(env) {
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return log
}
