package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"subs_dashboard/internal/config"
)

func TestRun_StartupErrorIsReturned(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "file://"+filepath.Join(t.TempDir(), "missing"))

	cfg := &config.Config{
		Env: "local",
		Pg:  config.PgConfig{Host: "127.0.0.1", Port: 1, User: "u", Password: "p", Db: "d", SSLMode: "disable"},
	}
	err := run(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply migrations")
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{"local", "dev", "prod", "PROD", "unknown"} {
		t.Run(env, func(t *testing.T) {
			assert.NotNil(t, setupLogger(env))
		})
	}
}
