package middleware

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	CacheStatusHeader = "X-Cache"
	cacheHit          = "HIT"
	cacheMiss         = "MISS"
)

// CachedResponse is what the response cache stores per key.
type CachedResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

type ResponseStore interface {
	Get(key string) (CachedResponse, bool)
	SetWithTTL(key string, value CachedResponse, ttl time.Duration)
}

type ResponseCacheConfig struct {
	Skipper middleware.Skipper
	// KeyFunc defaults to the method and request URI.
	KeyFunc func(c echo.Context) string
	// TTL of zero uses the store's default lifetime.
	TTL time.Duration
}

// ResponseCache serves repeated GET requests from store. Only 2xx responses
// are stored; every cacheable response carries an X-Cache header.
func ResponseCache(store ResponseStore, cfg ResponseCacheConfig) echo.MiddlewareFunc {
	if cfg.Skipper == nil {
		cfg.Skipper = middleware.DefaultSkipper
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = defaultCacheKey
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet || cfg.Skipper(c) {
				return next(c)
			}

			key := cfg.KeyFunc(c)
			if cached, ok := store.Get(key); ok {
				c.Response().Header().Set(CacheStatusHeader, cacheHit)
				return c.Blob(cached.Status, cached.ContentType, cached.Body)
			}

			c.Response().Header().Set(CacheStatusHeader, cacheMiss)
			buf := new(bytes.Buffer)
			resp := c.Response()
			writer := &captureWriter{Writer: io.MultiWriter(resp.Writer, buf), ResponseWriter: resp.Writer}
			resp.Writer = writer
			defer func() { resp.Writer = writer.ResponseWriter }()

			if err := next(c); err != nil {
				return err
			}

			if resp.Status >= http.StatusOK && resp.Status < http.StatusMultipleChoices {
				store.SetWithTTL(key, CachedResponse{
					Status:      resp.Status,
					ContentType: resp.Header().Get(echo.HeaderContentType),
					Body:        bytes.Clone(buf.Bytes()),
				}, cfg.TTL)
			}
			return nil
		}
	}
}

func defaultCacheKey(c echo.Context) string {
	return c.Request().Method + " " + c.Request().URL.RequestURI()
}

type captureWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *captureWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *captureWriter) Flush() {
	if err := http.NewResponseController(w.ResponseWriter).Flush(); err != nil && errors.Is(err, http.ErrNotSupported) {
		panic(errors.New("response writer flushing is not supported"))
	}
}

func (w *captureWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *captureWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
