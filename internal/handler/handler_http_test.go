package handler_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mallapi/internal/cache"
	"mallapi/internal/domain"
	"mallapi/internal/handler"
	"mallapi/internal/handler/mocks"
	"mallapi/internal/metrics"
	"mallapi/internal/middleware"
	"mallapi/internal/ratecounter"
	"mallapi/internal/validation"
)

type testServer struct {
	echo      *echo.Echo
	catalog   *mocks.MockCatalogService
	responses *cache.TTL[string, middleware.CachedResponse]
	counter   *ratecounter.Counter
	log       *metrics.Log
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	responses, err := cache.New[string, middleware.CachedResponse](time.Minute, 100)
	require.NoError(t, err)
	t.Cleanup(responses.Close)
	registry := cache.NewRegistry()
	registry.Register("responses", responses)

	counter, err := ratecounter.New(time.Minute, ratecounter.WithSweepInterval(0))
	require.NoError(t, err)
	t.Cleanup(counter.Close)

	log, err := metrics.NewLog(100)
	require.NoError(t, err)
	probe := metrics.ProbeFunc(func() metrics.MemoryUsage { return metrics.MemoryUsage{} })

	catalog := mocks.NewMockCatalogService(t)
	validator := validation.NewQueryValidator(20, 100)

	e := echo.New()
	handler.New(catalog, validator, logger).
		Register(e, middleware.ResponseCache(responses, middleware.ResponseCacheConfig{}))
	handler.NewDiagnostics(metrics.NewAggregator(log, probe), registry, counter, validator, logger,
		handler.DiagnosticsDefaults{SlowThresholdMs: 1000, MinOriginCount: 1}).
		Register(e.Group("/api/v1/diagnostics", middleware.DiagnosticsAuth("s3cret")))

	return &testServer{echo: e, catalog: catalog, responses: responses, counter: counter, log: log}
}

func (s *testServer) do(method, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestHTTP_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHTTP_ShopListIsCached(t *testing.T) {
	s := newTestServer(t)
	s.catalog.EXPECT().ListShops(mock.Anything, domain.Page{Limit: 20}).
		Return([]domain.Shop{coffeeCorner}, nil).Once()

	first := s.do(http.MethodGet, "/api/v1/shops")
	second := s.do(http.MethodGet, "/api/v1/shops")

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(middleware.CacheStatusHeader))
	assert.Equal(t, "HIT", second.Header().Get(middleware.CacheStatusHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHTTP_RejectedQueriesAreNotCached(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		target string
	}{
		{"limit above maximum", "/api/v1/shops?limit=1000"},
		{"negative offset", "/api/v1/shops?offset=-2"},
		{"uppercase slug", "/api/v1/shops/Coffee"},
		{"slug with underscore", "/api/v1/shops/coffee_corner/products"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(http.MethodGet, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Equal(t, 0, s.responses.Len())
}

func TestHTTP_ShopProducts(t *testing.T) {
	s := newTestServer(t)
	s.catalog.EXPECT().ListProducts(mock.Anything, "coffee-corner").
		Return([]domain.Product{{ID: 1, ShopID: 7, Name: "Espresso", PriceCents: 250}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/shops/coffee-corner/products")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Espresso")
}

func TestHTTP_DiagnosticsRequireSecret(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/v1/diagnostics/stats")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/diagnostics/stats", middleware.DiagnosticsSecretHeader, "s3cret")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"count":0,"average_elapsed_ms":0,"slowest_route":"","slowest_elapsed_ms":0,"error_rate_pct":0,"recent_memory_trend":[]}`,
		rec.Body.String())
}

func TestHTTP_DiagnosticsReadTelemetry(t *testing.T) {
	s := newTestServer(t)
	s.log.Append(slowSearch)
	s.log.Append(metrics.Record{Route: "/api/v1/shops/:slug", Method: http.MethodGet, ElapsedMs: 3, StatusCode: 404})
	s.counter.Increment("10.0.0.4")
	s.counter.Increment("10.0.0.4")

	secret := []string{middleware.DiagnosticsSecretHeader, "s3cret"}

	slow := s.do(http.MethodGet, "/api/v1/diagnostics/slow", secret...)
	assert.Equal(t, http.StatusOK, slow.Code)
	assert.Contains(t, slow.Body.String(), `"count":1`)

	errs := s.do(http.MethodGet, "/api/v1/diagnostics/errors", secret...)
	assert.Contains(t, errs.Body.String(), `"status_code":404`)

	origins := s.do(http.MethodGet, "/api/v1/diagnostics/origins?min=1", secret...)
	assert.JSONEq(t, `{"min":1,"origins":[{"address":"10.0.0.4","count":2,"class":"private"}]}`, origins.Body.String())

	atThreshold := s.do(http.MethodGet, "/api/v1/diagnostics/origins?min=2", secret...)
	assert.JSONEq(t, `{"min":2,"origins":[]}`, atThreshold.Body.String())

	bad := s.do(http.MethodGet, "/api/v1/diagnostics/slow?threshold=-1", secret...)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestHTTP_ClearCaches(t *testing.T) {
	s := newTestServer(t)
	s.catalog.EXPECT().ListShops(mock.Anything, domain.Page{Limit: 20}).
		Return([]domain.Shop{coffeeCorner}, nil).Twice()

	s.do(http.MethodGet, "/api/v1/shops")
	require.Equal(t, 1, s.responses.Len())

	rec := s.do(http.MethodDelete, "/api/v1/diagnostics/cache", middleware.DiagnosticsSecretHeader, "s3cret")
	assert.JSONEq(t, `{"cleared":1}`, rec.Body.String())

	again := s.do(http.MethodGet, "/api/v1/shops")
	assert.Equal(t, "MISS", again.Header().Get(middleware.CacheStatusHeader))
}
