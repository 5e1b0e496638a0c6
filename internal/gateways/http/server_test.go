package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	cfg "subs_dashboard/internal/config"
)

func TestServerOptions(t *testing.T) {
	s := New(UseCases{}, cfg.Config{Env: "local"}, nil,
		WithHost("0.0.0.0"),
		WithPort(9090),
		WithShutdownTimeout(time.Second),
		WithPort(0),
		WithHost(""),
	)
	assert.Equal(t, "0.0.0.0:9090", s.Addr())
	assert.Equal(t, time.Second, s.shutdownTimeout)
	assert.NoError(t, s.Close())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("FRONTEND_PORT", "")
	assert.Equal(t, []string{"http://localhost:3000", "https://localhost:3000"}, frontendOrigins("0.0.0.0"))

	t.Setenv("FRONTEND_PORT", "5173")
	assert.Equal(t, []string{"http://dash.local:5173", "https://dash.local:5173"}, frontendOrigins("dash.local"))

	conf := cfg.Config{Server: cfg.ServerConfig{CORSOrigins: []string{"https://app.example.com"}}}
	assert.Equal(t, []string{"https://app.example.com"}, corsConfig(conf).AllowOrigins)
}
