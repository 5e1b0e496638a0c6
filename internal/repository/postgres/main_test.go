package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"subs_dashboard/internal/entity"
)

var pgContainer *postgres.PostgresContainer

func cleanup() {
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
}

func TestMain(m *testing.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(1)
	}()

	c, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("subs_db"),
		postgres.WithUsername("subs_user"),
		postgres.WithPassword("subs_password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "run container: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	pgContainer = c

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "conn string: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	migDir, err := filepath.Abs("../../../migrations")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "migrations path: %v\n", err)
		cleanup()
		os.Exit(1)
	}
	if err := runMigrations(connStr, "file:///"+migDir); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "migrate up: %v\n", err)
		cleanup()
		os.Exit(1)
	}

	code := m.Run()

	cleanup()
	os.Exit(code)
}

func runMigrations(connStr, srcURL string) error {
	m, err := migrate.New(srcURL, connStr)
	if err != nil {
		return err
	}
	defer func(m *migrate.Migrate) {
		_, _ = m.Close()
	}(m)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// newPool opens a pool against the container and wipes user data; seeded categories stay
func newPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE TABLE subscriptions, sessions, users RESTART IDENTITY`)
	require.NoError(t, err)
	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool) strfmt.UUID {
	t.Helper()
	id := strfmt.UUID(uuid.New().String())
	_, err := NewUserRepository(pool).SaveUser(context.Background(), &entity.User{
		ID:           id,
		Email:        id.String() + "@example.com",
		PasswordHash: []byte("hash"),
	})
	require.NoError(t, err)
	return id
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
