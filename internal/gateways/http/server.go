package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	cfg "subs_dashboard/internal/config"
	"subs_dashboard/internal/gateways/http/mw"
	"subs_dashboard/internal/usecase"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"

	defaultHost            = "localhost"
	defaultPort            = 8080
	defaultShutdownTimeout = 5 * time.Second
	readHeaderTimeout      = 10 * time.Second
	defaultFrontendPort    = "3000"
)

// Server serves the dashboard API and shuts down when its Run context ends.
type Server struct {
	host            string
	port            uint16
	shutdownTimeout time.Duration
	router          *gin.Engine
	log             *slog.Logger
	srv             *http.Server
}

// UseCases - application services the handlers delegate to.
type UseCases struct {
	Sub       *usecase.Subscription
	Category  *usecase.Category
	Dashboard *usecase.Dashboard
	Auth      *usecase.Auth
}

// Option tunes a Server built by New.
type Option func(*Server)

// New builds the router and a Server listening on localhost:8080 unless options say otherwise.
func New(useCases UseCases, conf cfg.Config, log *slog.Logger, options ...Option) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	s := &Server{
		host:            defaultHost,
		port:            defaultPort,
		shutdownTimeout: defaultShutdownTimeout,
		router:          SetupGin(conf, useCases, log),
		log:             log,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

func WithHost(host string) Option {
	return func(s *Server) {
		if host != "" {
			s.host = host
		}
	}
}

func WithPort(port uint16) Option {
	return func(s *Server) {
		if port != 0 {
			s.port = port
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithShutdownTimeout bounds how long Run waits for in-flight requests on shutdown.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}

// Addr - host:port the server listens on.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(int(s.port)))
}

// SetupGin picks the gin mode for conf.Env and returns an engine with middleware and every API route.
func SetupGin(conf cfg.Config, useCases UseCases, log *slog.Logger) *gin.Engine {
	if conf.Env == envProd {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(
		mw.RequestID(),
		mw.RecoveryWithSlog(log),
		mw.GinSlog(log),
		cors.New(corsConfig(conf)),
	)

	setupRouter(r, useCases)
	return r
}

func corsConfig(conf cfg.Config) cors.Config {
	origins := conf.Server.CORSOrigins
	if len(origins) == 0 {
		origins = frontendOrigins(conf.Server.Host)
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", mw.RequestIDHeader},
		ExposeHeaders:    []string{mw.RequestIDHeader},
		AllowCredentials: true,
	}
}

// frontendOrigins - dashboard frontend on FRONTEND_PORT (3000 by default) of the API host.
func frontendOrigins(host string) []string {
	if host == "" || host == "0.0.0.0" {
		host = defaultHost
	}
	port := os.Getenv("FRONTEND_PORT")
	if port == "" {
		port = defaultFrontendPort
	}

	hp := net.JoinHostPort(host, port)
	return []string{"http://" + hp, "https://" + hp}
}

// Run serves until ctx is cancelled, then drains in-flight requests within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.log.Info("http server started", slog.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := s.Close(); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	if err := <-errCh; err != nil {
		return err
	}
	s.log.Info("server shutdown complete")
	return nil
}

// Close stops a running server, waiting up to the shutdown timeout.
func (s *Server) Close() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
