package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"mallapi/internal/cache"
	"mallapi/internal/domain"
)

var ErrShopNotFound = errors.New("shop not found")

// QueryCaches are the TTL namespaces that memoize catalog reads.
type QueryCaches struct {
	ShopPages *cache.TTL[domain.Page, []domain.Shop]
	Shops     *cache.TTL[int64, domain.Shop]
	Products  *cache.TTL[int64, []domain.Product]
}

// NewQueryCaches builds the catalog namespaces and registers them in reg.
func NewQueryCaches(reg *cache.Registry, ttl time.Duration, maxEntries int, opts ...cache.Option) (QueryCaches, error) {
	pages, err := cache.New[domain.Page, []domain.Shop](ttl, maxEntries, append([]cache.Option{cache.WithName("shop_pages")}, opts...)...)
	if err != nil {
		return QueryCaches{}, fmt.Errorf("failed to create shop page cache: %w", err)
	}
	shops, err := cache.New[int64, domain.Shop](ttl, maxEntries, append([]cache.Option{cache.WithName("shops")}, opts...)...)
	if err != nil {
		pages.Close()
		return QueryCaches{}, fmt.Errorf("failed to create shop cache: %w", err)
	}
	products, err := cache.New[int64, []domain.Product](ttl, maxEntries, append([]cache.Option{cache.WithName("products")}, opts...)...)
	if err != nil {
		pages.Close()
		shops.Close()
		return QueryCaches{}, fmt.Errorf("failed to create product cache: %w", err)
	}

	for _, ns := range []interface {
		cache.Namespace
		Name() string
	}{pages, shops, products} {
		reg.Register(ns.Name(), ns)
	}
	return QueryCaches{ShopPages: pages, Shops: shops, Products: products}, nil
}

// CatalogService serves the read-only shop directory. Slugs resolve through
// the slug cache; shop and product reads are memoized per query.
type CatalogService struct {
	repo  Repository
	slugs SlugCache

	listShops    func(context.Context, domain.Page) ([]domain.Shop, error)
	getShop      func(context.Context, int64) (domain.Shop, error)
	listProducts func(context.Context, int64) ([]domain.Product, error)
}

func NewCatalogService(repo Repository, slugs SlugCache, caches QueryCaches, ttl time.Duration) *CatalogService {
	return &CatalogService{
		repo:         repo,
		slugs:        slugs,
		listShops:    cache.Memoize(caches.ShopPages, identity[domain.Page], ttl, repo.ListShops),
		getShop:      cache.Memoize(caches.Shops, identity[int64], ttl, repo.GetShop),
		listProducts: cache.Memoize(caches.Products, identity[int64], ttl, repo.ListProducts),
	}
}

func (s *CatalogService) ListShops(ctx context.Context, page domain.Page) ([]domain.Shop, error) {
	shops, err := s.listShops(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return shops, nil
}

func (s *CatalogService) GetShop(ctx context.Context, slug string) (domain.Shop, error) {
	id, err := s.resolve(ctx, slug)
	if err != nil {
		return domain.Shop{}, err
	}

	shop, err := s.getShop(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Shop{}, ErrShopNotFound
		}
		return domain.Shop{}, fmt.Errorf("failed to get shop: %w", err)
	}
	return shop, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, slug string) ([]domain.Product, error) {
	id, err := s.resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := s.listProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) resolve(ctx context.Context, slug string) (int64, error) {
	if id, ok := s.slugs.Get(slug); ok {
		return id, nil
	}

	id, err := s.repo.FindShopIDBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrShopNotFound
		}
		return 0, fmt.Errorf("failed to find shop: %w", err)
	}

	s.slugs.Set(slug, id)
	return id, nil
}

func identity[T any](v T) T {
	return v
}
