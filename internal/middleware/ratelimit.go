package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"mallapi/internal/config"
	"mallapi/internal/metrics"
	"mallapi/internal/validation"
)

type rateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

const (
	retryAfterHeader = "1"
	bypassHeader     = "X-Rate-Limit-Bypass"
)

var (
	rateLimitExceededResp = rateLimitResponse{
		Error:      "rate limit exceeded",
		RetryAfter: 1,
	}
	rateLimiterInternalErr = map[string]string{
		"error": "internal server error",
	}
)

// RateLimit rejects clients above cfg.RPS. It is the enforcement
// counterpart of the origin counter and keys clients the same way. Denials
// are reported to sink as rate_limited events.
func RateLimit(cfg *config.RateLimitConfig, sink metrics.Sink, logger *slog.Logger) echo.MiddlewareFunc {
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	secret := []byte(cfg.BypassSecret)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if cfg.BypassSecret == "" {
				return false
			}
			provided := c.Request().Header.Get(bypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return validation.NormalizeAddress(c.RealIP()), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			metrics.SafeEmit(sink, metrics.Event{
				Time:    time.Now(),
				Kind:    metrics.KindRateLimited,
				Level:   slog.LevelWarn,
				Message: "rate limit exceeded",
				Attrs: []slog.Attr{
					slog.String("address", identifier),
					slog.String("route", c.Path()),
				},
			})
			c.Response().Header().Set("Retry-After", retryAfterHeader)
			return c.JSON(http.StatusTooManyRequests, rateLimitExceededResp)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, rateLimiterInternalErr)
		},
	})
}
