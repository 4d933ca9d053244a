package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Metrics     MetricsConfig
	Cache       CacheConfig
	RateCounter RateCounterConfig
	RateLimit   RateLimitConfig
	Diagnostics DiagnosticsConfig
}

type ServerConfig struct {
	Host            string `env:"SERVER_HOST" envDefault:"localhost"`
	Port            int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections  int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	MaxBodySize     string `env:"SERVER_MAX_BODY_SIZE" envDefault:"1M"`
	DefaultPageSize int    `env:"SERVER_DEFAULT_PAGE_SIZE" envDefault:"20"`
	MaxPageSize     int    `env:"SERVER_MAX_PAGE_SIZE" envDefault:"100"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"mall"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type MetricsConfig struct {
	Capacity          int           `env:"METRICS_CAPACITY" envDefault:"10000"`
	SlowThreshold     time.Duration `env:"METRICS_SLOW_THRESHOLD" envDefault:"1s"`
	HeapLimitMB       int           `env:"METRICS_HEAP_LIMIT_MB" envDefault:"500"`
	EventsEnabled     bool          `env:"METRICS_EVENTS_ENABLED" envDefault:"true"`
	BufferSize        int           `env:"METRICS_EVENT_BUFFER" envDefault:"1024"`
	FlushInterval     time.Duration `env:"METRICS_FLUSH_INTERVAL" envDefault:"1s"`
	FlushThreshold    int           `env:"METRICS_FLUSH_THRESHOLD" envDefault:"100"`
	PrometheusEnabled bool          `env:"METRICS_PROMETHEUS_ENABLED" envDefault:"true"`
}

type CacheConfig struct {
	QueryTTL           time.Duration `env:"CACHE_QUERY_TTL" envDefault:"5m"`
	QueryMaxEntries    int           `env:"CACHE_QUERY_MAX_ENTRIES" envDefault:"1000"`
	ResponseTTL        time.Duration `env:"CACHE_RESPONSE_TTL" envDefault:"1m"`
	ResponseMaxEntries int           `env:"CACHE_RESPONSE_MAX_ENTRIES" envDefault:"500"`
	CleanupInterval    time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"1m"`
	SlugMaxSizePow2    int           `env:"CACHE_SLUG_MAX_SIZE_POW2" envDefault:"20"`
}

type RateCounterConfig struct {
	Window        time.Duration `env:"RATE_COUNTER_WINDOW" envDefault:"60s"`
	SweepInterval time.Duration `env:"RATE_COUNTER_SWEEP_INTERVAL" envDefault:"60s"`
	Threshold     int           `env:"RATE_COUNTER_THRESHOLD" envDefault:"100"`
}

type RateLimitConfig struct {
	Enabled       bool    `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type DiagnosticsConfig struct {
	Secret       string `env:"DIAGNOSTICS_SECRET"`
	PprofEnabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings the telemetry core would refuse at construction,
// so a bad environment fails before any listener is opened.
func (c *Config) Validate() error {
	var errs []error
	if c.Metrics.Capacity <= 0 {
		errs = append(errs, errors.New("METRICS_CAPACITY must be positive"))
	}
	if c.Metrics.SlowThreshold < 0 {
		errs = append(errs, errors.New("METRICS_SLOW_THRESHOLD must not be negative"))
	}
	if c.Metrics.BufferSize <= 0 {
		errs = append(errs, errors.New("METRICS_EVENT_BUFFER must be positive"))
	}
	if c.Metrics.FlushInterval <= 0 {
		errs = append(errs, errors.New("METRICS_FLUSH_INTERVAL must be positive"))
	}
	if c.Cache.QueryTTL <= 0 || c.Cache.ResponseTTL <= 0 {
		errs = append(errs, errors.New("cache TTLs must be positive"))
	}
	if c.Cache.QueryMaxEntries <= 0 || c.Cache.ResponseMaxEntries <= 0 {
		errs = append(errs, errors.New("cache max entries must be positive"))
	}
	if c.RateCounter.Window <= 0 {
		errs = append(errs, errors.New("RATE_COUNTER_WINDOW must be positive"))
	}
	if c.RateCounter.Threshold <= 0 {
		errs = append(errs, errors.New("RATE_COUNTER_THRESHOLD must be positive"))
	}
	if c.Server.DefaultPageSize <= 0 || c.Server.MaxPageSize <= 0 {
		errs = append(errs, errors.New("page sizes must be positive"))
	}
	return errors.Join(errs...)
}
