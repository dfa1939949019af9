package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/taut-hunter/internal/apperr"
	pkgserver "github.com/DjordjeVuckovic/taut-hunter/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV_PATH", "testdata/missing.env")
	t.Setenv("ENV", "test")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("CORS_ORIGINS", "")
		t.Setenv("USE_HTTP2", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.False(t, cfg.UseHttp2)
		assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	})

	t.Run("explicit", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
		t.Setenv("USE_HTTP2", "true")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.UseHttp2)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	})

	t.Run("invalid port", func(t *testing.T) {
		for _, port := range []string{"http", "0", "70000"} {
			t.Setenv("PORT", port)
			_, err := LoadConfig()
			assert.Error(t, err, port)
		}
	})
}

func TestServer_HealthChecks(t *testing.T) {
	cfg := &Config{Port: DefaultPort, CorsOrigins: []string{"*"}}

	t.Run("healthy", func(t *testing.T) {
		s := New(cfg, pkgserver.NewOkHealthChecker()).SetupHealthChecks("/health")
		rec := httptest.NewRecorder()
		s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("unhealthy", func(t *testing.T) {
		s := New(cfg, pkgserver.HealthCheckerFunc(func(context.Context) bool { return false })).SetupHealthChecks("/health")
		rec := httptest.NewRecorder()
		s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestServer_ErrorHandlerAndMiddlewares(t *testing.T) {
	s := New(&Config{Port: DefaultPort, CorsOrigins: []string{"*"}}, pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler()

	s.Echo.GET("/boom", func(c echo.Context) error {
		panic("boom")
	})
	s.Echo.GET("/missing", func(c echo.Context) error {
		return errors.Join(errors.New("lookup"), apperr.ErrNotFound)
	})

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
