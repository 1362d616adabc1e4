package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confpulse/internal/config"
	"confpulse/internal/services"
	"confpulse/pkg/contracts"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.ReportsDir = t.TempDir()
	cfg.Upload.RateLimit = false
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a := &Application{
		Config:           cfg,
		Logger:           logger,
		AnalyticsService: services.NewAnalyticsService(cfg, logger),
		HealthService:    services.NewHealthService(contracts.Version, cfg.Paths, logger),
	}
	a.setupRouter()
	a.createServer()
	return a
}

func TestRouterHealthEndpoint(t *testing.T) {
	a := newTestApplication(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterVersionEndpoint(t *testing.T) {
	a := newTestApplication(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), contracts.Version)
}

func TestRouterResultsBeforeUpload(t *testing.T) {
	a := newTestApplication(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analytics/results", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_RESULTS")
}

func TestRouterMetricsEndpoint(t *testing.T) {
	a := newTestApplication(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterSecurityHeaders(t *testing.T) {
	a := newTestApplication(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestCreateServer(t *testing.T) {
	a := newTestApplication(t)

	require.NotNil(t, a.Server)
	assert.Equal(t, ":8080", a.Server.Addr)
	assert.Equal(t, a.Config.Server.ReadTimeout, a.Server.ReadTimeout)
}
