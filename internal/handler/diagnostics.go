package handler

import (
	"cmp"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"mallapi/internal/domain"
	"mallapi/internal/metrics"
	"mallapi/internal/validation"
)

// DiagnosticsDefaults are used when a query parameter is left out.
type DiagnosticsDefaults struct {
	SlowThresholdMs float64
	MinOriginCount  int
}

// DiagnosticsHandler exposes request metrics, cache state and busy origins
// to operators. Only malformed parameters are reported as errors; a failing
// query answers with an empty result.
type DiagnosticsHandler struct {
	diag      Diagnostics
	caches    CacheAdmin
	origins   OriginCounter
	validator QueryValidator
	logger    *slog.Logger
	defaults  DiagnosticsDefaults
}

func NewDiagnostics(
	diag Diagnostics,
	caches CacheAdmin,
	origins OriginCounter,
	validator QueryValidator,
	logger *slog.Logger,
	defaults DiagnosticsDefaults,
) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		diag:      diag,
		caches:    caches,
		origins:   origins,
		validator: validator,
		logger:    logger,
		defaults:  defaults,
	}
}

func (h *DiagnosticsHandler) Register(g *echo.Group) {
	g.GET("/stats", h.Stats)
	g.GET("/slow", h.SlowRequests)
	g.GET("/errors", h.ErrorRequests)
	g.GET("/endpoint", h.EndpointStats)
	g.GET("/recommendations", h.Recommendations)
	g.GET("/cache", h.Caches)
	g.DELETE("/cache", h.ClearCaches)
	g.GET("/origins", h.Origins)
}

func (h *DiagnosticsHandler) Stats(c echo.Context) error {
	stats := safely(h.logger, "stats", metrics.Stats{}, h.diag.Stats)
	stats.RecentMemoryTrend = orEmpty(stats.RecentMemoryTrend)
	return c.JSON(http.StatusOK, stats)
}

func (h *DiagnosticsHandler) SlowRequests(c echo.Context) error {
	threshold, err := h.validator.ParseThreshold(c.QueryParam("threshold"), h.defaults.SlowThresholdMs)
	if err != nil {
		return validationError(c, err)
	}

	records := safely(h.logger, "slow", nil, func() []metrics.Record {
		return h.diag.SlowRequests(threshold)
	})
	return c.JSON(http.StatusOK, domain.SlowRequestsResponse{
		ThresholdMs:     threshold,
		RecordsResponse: recordsResponse(records),
	})
}

func (h *DiagnosticsHandler) ErrorRequests(c echo.Context) error {
	records := safely(h.logger, "errors", nil, h.diag.ErrorRequests)
	return c.JSON(http.StatusOK, recordsResponse(records))
}

func (h *DiagnosticsHandler) EndpointStats(c echo.Context) error {
	route, method := c.QueryParam("route"), c.QueryParam("method")
	if err := h.validator.ValidateEndpointQuery(route, method); err != nil {
		return validationError(c, err)
	}

	empty := metrics.EndpointStats{Route: route, Method: method, NoData: true}
	stats := safely(h.logger, "endpoint", empty, func() metrics.EndpointStats {
		return h.diag.EndpointStats(route, method)
	})
	stats.Records = orEmpty(stats.Records)
	return c.JSON(http.StatusOK, stats)
}

func (h *DiagnosticsHandler) Recommendations(c echo.Context) error {
	advice := safely(h.logger, "recommendations", nil, h.diag.Recommendations)
	return c.JSON(http.StatusOK, domain.RecommendationsResponse{Recommendations: orEmpty(advice)})
}

func (h *DiagnosticsHandler) Caches(c echo.Context) error {
	stats := safely(h.logger, "cache", nil, h.caches.Stats)

	namespaces := make([]domain.CacheNamespace, 0, len(stats))
	for _, name := range slices.Sorted(maps.Keys(stats)) {
		s := stats[name]
		namespaces = append(namespaces, domain.CacheNamespace{
			Name:        name,
			Entries:     s.Entries,
			Hits:        s.Hits,
			Misses:      s.Misses,
			Evictions:   s.Evictions,
			Expirations: s.Expirations,
		})
	}
	return c.JSON(http.StatusOK, domain.CacheResponse{Namespaces: namespaces})
}

func (h *DiagnosticsHandler) ClearCaches(c echo.Context) error {
	cleared := safely(h.logger, "cache_clear", 0, h.caches.ClearAll)
	h.logger.Info("caches cleared", slog.Int("entries", cleared))
	return c.JSON(http.StatusOK, domain.ClearCacheResponse{Cleared: cleared})
}

func (h *DiagnosticsHandler) Origins(c echo.Context) error {
	minCount, err := h.validator.ParseMinCount(c.QueryParam("min"), h.defaults.MinOriginCount)
	if err != nil {
		return validationError(c, err)
	}

	counts := safely(h.logger, "origins", nil, func() map[string]int {
		return h.origins.Above(minCount)
	})
	return c.JSON(http.StatusOK, domain.OriginsResponse{Min: minCount, Origins: rankOrigins(counts)})
}

// rankOrigins orders origins by count, busiest first, with ties broken by
// address.
func rankOrigins(counts map[string]int) []domain.OriginCount {
	origins := make([]domain.OriginCount, 0, len(counts))
	for addr, n := range counts {
		origins = append(origins, domain.OriginCount{
			Address: addr,
			Count:   n,
			Class:   validation.ClassifyAddress(addr),
		})
	}
	slices.SortFunc(origins, func(a, b domain.OriginCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Address, b.Address))
	})
	return origins
}

func recordsResponse(records []metrics.Record) domain.RecordsResponse {
	return domain.RecordsResponse{Count: len(records), Records: orEmpty(records)}
}

// safely runs query and returns fallback instead if it panics.
func safely[T any](logger *slog.Logger, name string, fallback T, query func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("diagnostics query failed", slog.String("query", name), slog.Any("panic", r))
			out = fallback
		}
	}()
	return query()
}
