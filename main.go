package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"

	"mallapi/internal/cache"
	"mallapi/internal/config"
	"mallapi/internal/handler"
	"mallapi/internal/instrument"
	"mallapi/internal/metrics"
	custommiddleware "mallapi/internal/middleware"
	"mallapi/internal/ratecounter"
	"mallapi/internal/repository"
	"mallapi/internal/requestid"
	"mallapi/internal/service"
	"mallapi/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clk := clock.New()
	probe := metrics.NewRuntimeProbe()

	// Outlives the signal ctx so requests drained by Shutdown still get their
	// events written; Close flushes the rest.
	recorder := metrics.NewRecorder(&cfg.Metrics, logger)
	recorder.Start(context.WithoutCancel(ctx))
	defer recorder.Close()

	requestLog, err := metrics.NewLog(cfg.Metrics.Capacity,
		metrics.WithSlowThreshold(cfg.Metrics.SlowThreshold),
		metrics.WithSink(recorder))
	if err != nil {
		return fmt.Errorf("failed to create metrics log: %w", err)
	}
	aggregator := metrics.NewAggregator(requestLog, probe,
		metrics.WithHeapLimit(uint64(cfg.Metrics.HeapLimitMB)<<20))

	counter, err := ratecounter.New(cfg.RateCounter.Window,
		ratecounter.WithClock(clk),
		ratecounter.WithSweepInterval(cfg.RateCounter.SweepInterval))
	if err != nil {
		return fmt.Errorf("failed to create rate counter: %w", err)
	}
	defer counter.Close()

	ids, err := requestid.New(uint64(clk.Now().Unix()))
	if err != nil {
		return fmt.Errorf("failed to create request id generator: %w", err)
	}

	hook := instrument.New(requestLog, counter,
		instrument.WithClock(clk),
		instrument.WithProbe(probe),
		instrument.WithSink(recorder),
		instrument.WithIDs(ids.Next),
		instrument.WithRateThreshold(cfg.RateCounter.Threshold))

	caches := cache.NewRegistry()
	defer caches.Close()
	cacheOpts := []cache.Option{
		cache.WithClock(clk),
		cache.WithLogger(logger),
		cache.WithCleanupInterval(cfg.Cache.CleanupInterval),
	}

	responses, err := cache.New[string, custommiddleware.CachedResponse](
		cfg.Cache.ResponseTTL, cfg.Cache.ResponseMaxEntries,
		append([]cache.Option{cache.WithName("responses")}, cacheOpts...)...)
	if err != nil {
		return fmt.Errorf("failed to create response cache: %w", err)
	}
	caches.Register("responses", responses)

	queryCaches, err := service.NewQueryCaches(caches, cfg.Cache.QueryTTL, cfg.Cache.QueryMaxEntries, cacheOpts...)
	if err != nil {
		return fmt.Errorf("failed to create query caches: %w", err)
	}

	slugs, err := cache.NewSlugCache(cfg.Cache.SlugMaxSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create slug cache: %w", err)
	}
	defer slugs.Close()

	pool, err := repository.NewPool(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create database pool: %w", err)
	}
	defer pool.Close()

	repo := repository.NewCatalogRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	validator := validation.NewQueryValidator(cfg.Server.DefaultPageSize, cfg.Server.MaxPageSize)
	catalog := service.NewCatalogService(repo, slugs, queryCaches, cfg.Cache.QueryTTL)

	e := echo.New()
	e.HideBanner = true
	e.Use(custommiddleware.Instrument(hook))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.MaxBodySize))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, recorder, logger))

	handler.New(catalog, validator, logger).
		Register(e, custommiddleware.ResponseCache(responses, custommiddleware.ResponseCacheConfig{
			TTL: cfg.Cache.ResponseTTL,
		}))

	diagnosticsAuth := custommiddleware.DiagnosticsAuth(cfg.Diagnostics.Secret)
	handler.NewDiagnostics(aggregator, caches, counter, validator, logger, handler.DiagnosticsDefaults{
		SlowThresholdMs: requestLog.SlowThresholdMs(),
		MinOriginCount:  cfg.RateCounter.Threshold,
	}).Register(e.Group("/api/v1/diagnostics", diagnosticsAuth))

	if cfg.Metrics.PrometheusEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			metrics.NewCollector(metrics.CollectorSources{
				Aggregator: aggregator,
				Caches:     caches,
				Origins:    counter,
				Slugs:      slugs,
				Events:     recorder,
			}),
		)
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})), diagnosticsAuth)
	}

	if cfg.Diagnostics.PprofEnabled {
		custommiddleware.RegisterProfiler(e.Group("/debug/pprof", diagnosticsAuth))
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}
	if cfg.Diagnostics.Secret == "" {
		logger.Warn("diagnostics endpoints are not protected, set DIAGNOSTICS_SECRET")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", addr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	server := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	return nil
}
