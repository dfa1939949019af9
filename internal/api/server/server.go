package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/taut-hunter/internal/apperr"
	mw "github.com/DjordjeVuckovic/taut-hunter/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/taut-hunter/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
	healthCheckTimeout      = 2 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg    *Config
	health pkgserver.HealthChecker
	ctx    context.Context
	stop   context.CancelFunc
}

func New(cfg *Config, health pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.DisableHTTP2 = !cfg.UseHttp2

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Server{
		Echo:   e,
		cfg:    cfg,
		health: health,
		ctx:    ctx,
		stop:   stop,
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger(mw.SkipPaths("/health")))
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	return s
}

func (s *Server) SetupErrorHandler() *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.Echo.GET(path, func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		if !s.health.Healthy(ctx) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	s.Echo.GET(path, echoSwagger.WrapHandler)
	return s
}

// Context is cancelled on SIGINT or SIGTERM.
func (s *Server) Context() context.Context {
	return s.ctx
}

func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.ctx.Done()
}

// Start serves until the shutdown signal and then drains in-flight requests.
func (s *Server) Start() error {
	defer s.stop()

	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-s.ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	return s.Echo.Shutdown(ctx)
}
