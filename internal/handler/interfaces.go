package handler

//go:generate go tool mockery

import (
	"context"

	"mallapi/internal/cache"
	"mallapi/internal/domain"
	"mallapi/internal/metrics"
)

type CatalogService interface {
	ListShops(ctx context.Context, page domain.Page) ([]domain.Shop, error)
	GetShop(ctx context.Context, slug string) (domain.Shop, error)
	ListProducts(ctx context.Context, slug string) ([]domain.Product, error)
}

type QueryValidator interface {
	ValidateSlug(slug string) error
	ParsePage(limit, offset string) (domain.Page, error)
	ParseThreshold(raw string, def float64) (float64, error)
	ValidateEndpointQuery(route, method string) error
	ParseMinCount(raw string, def int) (int, error)
}

// Diagnostics is the read side of the request metrics.
type Diagnostics interface {
	Stats() metrics.Stats
	SlowRequests(thresholdMs float64) []metrics.Record
	ErrorRequests() []metrics.Record
	EndpointStats(route, method string) metrics.EndpointStats
	Recommendations() []string
}

type CacheAdmin interface {
	Stats() map[string]cache.Stats
	ClearAll() int
}

type OriginCounter interface {
	Above(minCount int) map[string]int
}
