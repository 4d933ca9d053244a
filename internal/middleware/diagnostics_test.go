package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"mallapi/internal/middleware"
)

func TestDiagnosticsAuth(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		provided string
		want     int
	}{
		{"open without secret", "", "", http.StatusOK},
		{"correct secret", "s3cret", "s3cret", http.StatusOK},
		{"missing header", "s3cret", "", http.StatusUnauthorized},
		{"wrong secret", "s3cret", "guess", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			g := e.Group("/api/v1/diagnostics", middleware.DiagnosticsAuth(tt.secret))
			g.GET("/stats", func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/diagnostics/stats", nil)
			if tt.provided != "" {
				req.Header.Set(middleware.DiagnosticsSecretHeader, tt.provided)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
			}
		})
	}
}

func TestRegisterProfiler(t *testing.T) {
	e := echo.New()
	middleware.RegisterProfiler(e.Group("/debug/pprof"))

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/goroutine", "/debug/pprof/heap", "/debug/pprof/cmdline"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
