package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mallapi/internal/instrument"
	"mallapi/internal/metrics"
	"mallapi/internal/validation"
)

type RequestHook interface {
	Start(req instrument.Request) *instrument.Handle
	End(h *instrument.Handle, statusCode int) metrics.Record
}

// Instrument times every request through hook. It must be registered outside
// Recover so that panicking handlers are still recorded, as 500s.
func Instrument(hook RequestHook) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			handle := hook.Start(instrument.Request{
				Route:     cmp.Or(c.Path(), req.URL.Path, "/"),
				Method:    req.Method,
				UserAgent: req.UserAgent(),
				Address:   validation.NormalizeAddress(c.RealIP()),
			})
			if id := handle.ID(); id != "" {
				c.Response().Header().Set(echo.HeaderXRequestID, id)
			}

			err := next(c)

			hook.End(handle, responseStatus(c, err))
			return err
		}
	}
}

// responseStatus predicts the status echo's error handler will write for err.
func responseStatus(c echo.Context, err error) int {
	resp := c.Response()
	if err == nil || resp.Committed {
		return resp.Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
