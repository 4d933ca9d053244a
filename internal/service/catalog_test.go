package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mallapi/internal/cache"
	"mallapi/internal/domain"
	"mallapi/internal/service"
	"mallapi/internal/service/mocks"
)

var coffeeCorner = domain.Shop{ID: 7, Slug: "coffee-corner", Name: "Coffee Corner", Floor: 2, Category: "food"}

func newService(t *testing.T, repo *mocks.MockRepository, slugs *mocks.MockSlugCache) (*service.CatalogService, *cache.Registry) {
	t.Helper()
	reg := cache.NewRegistry()
	caches, err := service.NewQueryCaches(reg, time.Minute, 100)
	require.NoError(t, err)
	t.Cleanup(reg.Close)
	return service.NewCatalogService(repo, slugs, caches, time.Minute), reg
}

func TestNewQueryCaches_RegistersNamespaces(t *testing.T) {
	reg := cache.NewRegistry()
	_, err := service.NewQueryCaches(reg, time.Minute, 10)
	require.NoError(t, err)
	defer reg.Close()

	assert.Equal(t, []string{"products", "shop_pages", "shops"}, reg.Names())
}

func TestNewQueryCaches_InvalidCapacity(t *testing.T) {
	_, err := service.NewQueryCaches(cache.NewRegistry(), time.Minute, 0)
	assert.ErrorIs(t, err, cache.ErrInvalidCapacity)
}

// GetShop tests

func TestGetShop_SlugCacheHit(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().GetShop(mock.Anything, int64(7)).Return(coffeeCorner, nil).Once()

	slugs := mocks.NewMockSlugCache(t)
	slugs.EXPECT().Get("coffee-corner").Return(int64(7), true)

	svc, _ := newService(t, repo, slugs)

	shop, err := svc.GetShop(context.Background(), "coffee-corner")
	require.NoError(t, err)
	assert.Equal(t, coffeeCorner, shop)
}

func TestGetShop_SlugCacheMissPopulatesCache(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().FindShopIDBySlug(mock.Anything, "coffee-corner").Return(int64(7), nil).Once()
	repo.EXPECT().GetShop(mock.Anything, int64(7)).Return(coffeeCorner, nil).Once()

	slugs := mocks.NewMockSlugCache(t)
	slugs.EXPECT().Get("coffee-corner").Return(int64(0), false).Once()
	slugs.EXPECT().Set("coffee-corner", int64(7)).Return().Once()

	svc, _ := newService(t, repo, slugs)

	shop, err := svc.GetShop(context.Background(), "coffee-corner")
	require.NoError(t, err)
	assert.Equal(t, coffeeCorner, shop)
}

func TestGetShop_MemoizesShopReads(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().GetShop(mock.Anything, int64(7)).Return(coffeeCorner, nil).Once()

	slugs := mocks.NewMockSlugCache(t)
	slugs.EXPECT().Get("coffee-corner").Return(int64(7), true).Times(3)

	svc, reg := newService(t, repo, slugs)

	for range 3 {
		shop, err := svc.GetShop(context.Background(), "coffee-corner")
		require.NoError(t, err)
		assert.Equal(t, coffeeCorner, shop)
	}
	assert.Equal(t, 1, reg.Sizes()["shops"])
}

func TestGetShop_NotFound(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().FindShopIDBySlug(mock.Anything, "missing").Return(int64(0), pgx.ErrNoRows)

	slugs := mocks.NewMockSlugCache(t)
	slugs.EXPECT().Get("missing").Return(int64(0), false)

	svc, _ := newService(t, repo, slugs)

	_, err := svc.GetShop(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrShopNotFound)
}

func TestGetShop_DeletedAfterSlugCached(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().GetShop(mock.Anything, int64(7)).Return(domain.Shop{}, pgx.ErrNoRows)

	slugs := mocks.NewMockSlugCache(t)
	slugs.EXPECT().Get("coffee-corner").Return(int64(7), true)

	svc, reg := newService(t, repo, slugs)

	_, err := svc.GetShop(context.Background(), "coffee-corner")
	assert.ErrorIs(t, err, service.ErrShopNotFound)
	assert.Equal(t, 0, reg.Sizes()["shops"], "errors are not cached")
}

func TestGetShop_RepositoryError(t *testing.T) {
	expectedErr := errors.New("db connection error")

	repo := mocks.NewMockRepository(t)
	repo.EXPECT().FindShopIDBySlug(mock.Anything, "coffee-corner").Return(int64(0), expectedErr)

	slugs := mocks.NewMockSlugCache(t)
	slugs.EXPECT().Get("coffee-corner").Return(int64(0), false)

	svc, _ := newService(t, repo, slugs)

	_, err := svc.GetShop(context.Background(), "coffee-corner")
	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.NotErrorIs(t, err, service.ErrShopNotFound)
}

// ListShops tests

func TestListShops_MemoizedPerPage(t *testing.T) {
	first := domain.Page{Limit: 20}
	second := domain.Page{Limit: 20, Offset: 20}

	repo := mocks.NewMockRepository(t)
	repo.EXPECT().ListShops(mock.Anything, first).Return([]domain.Shop{coffeeCorner}, nil).Once()
	repo.EXPECT().ListShops(mock.Anything, second).Return([]domain.Shop{}, nil).Once()

	svc, _ := newService(t, repo, mocks.NewMockSlugCache(t))

	for range 2 {
		shops, err := svc.ListShops(context.Background(), first)
		require.NoError(t, err)
		assert.Equal(t, []domain.Shop{coffeeCorner}, shops)
	}
	shops, err := svc.ListShops(context.Background(), second)
	require.NoError(t, err)
	assert.Empty(t, shops)
}

func TestListShops_Error(t *testing.T) {
	expectedErr := errors.New("timeout")

	repo := mocks.NewMockRepository(t)
	repo.EXPECT().ListShops(mock.Anything, mock.Anything).Return(nil, expectedErr).Twice()

	svc, _ := newService(t, repo, mocks.NewMockSlugCache(t))

	for range 2 {
		_, err := svc.ListShops(context.Background(), domain.Page{Limit: 20})
		assert.ErrorIs(t, err, expectedErr)
	}
}

// ListProducts tests

func TestListProducts(t *testing.T) {
	products := []domain.Product{{ID: 1, ShopID: 7, Name: "Espresso", PriceCents: 250}}

	repo := mocks.NewMockRepository(t)
	repo.EXPECT().ListProducts(mock.Anything, int64(7)).Return(products, nil).Once()

	slugs := mocks.NewMockSlugCache(t)
	slugs.EXPECT().Get("coffee-corner").Return(int64(7), true).Twice()

	svc, _ := newService(t, repo, slugs)

	for range 2 {
		got, err := svc.ListProducts(context.Background(), "coffee-corner")
		require.NoError(t, err)
		assert.Equal(t, products, got)
	}
}

func TestListProducts_UnknownShop(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.EXPECT().FindShopIDBySlug(mock.Anything, "missing").Return(int64(0), pgx.ErrNoRows)

	slugs := mocks.NewMockSlugCache(t)
	slugs.EXPECT().Get("missing").Return(int64(0), false)

	svc, _ := newService(t, repo, slugs)

	_, err := svc.ListProducts(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrShopNotFound)
}
