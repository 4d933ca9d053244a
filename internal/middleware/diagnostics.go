package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
)

const DiagnosticsSecretHeader = "X-Diagnostics-Secret"

var errDiagnosticsUnauthorized = map[string]string{"error": "unauthorized"}

// DiagnosticsAuth guards operator endpoints with a shared secret. An empty
// secret leaves them open, which is only meant for local development.
func DiagnosticsAuth(secret string) echo.MiddlewareFunc {
	secretBytes := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return next(c)
			}
			provided := c.Request().Header.Get(DiagnosticsSecretHeader)
			if subtle.ConstantTimeCompare([]byte(provided), secretBytes) != 1 {
				return c.JSON(http.StatusUnauthorized, errDiagnosticsUnauthorized)
			}
			return next(c)
		}
	}
}

var runtimeProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

func RegisterProfiler(g *echo.Group) {
	g.GET("/", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	g.GET("/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	g.GET("/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	g.GET("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.POST("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.GET("/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))
	for _, name := range runtimeProfiles {
		g.GET("/"+name, echo.WrapHandler(pprof.Handler(name)))
	}
}
