package service

//go:generate go tool mockery

import (
	"context"

	"mallapi/internal/domain"
)

type Repository interface {
	FindShopIDBySlug(ctx context.Context, slug string) (int64, error)
	GetShop(ctx context.Context, id int64) (domain.Shop, error)
	ListShops(ctx context.Context, page domain.Page) ([]domain.Shop, error)
	ListProducts(ctx context.Context, shopID int64) ([]domain.Product, error)
}

type SlugCache interface {
	Get(slug string) (int64, bool)
	Set(slug string, shopID int64)
}
