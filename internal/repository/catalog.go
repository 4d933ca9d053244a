package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mallapi/internal/config"
	"mallapi/internal/domain"
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS shops (
	id          BIGSERIAL PRIMARY KEY,
	slug        VARCHAR(64) NOT NULL UNIQUE,
	name        TEXT NOT NULL,
	floor       INTEGER NOT NULL DEFAULT 0,
	category    TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	shop_id     BIGINT NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	price_cents BIGINT NOT NULL CHECK (price_cents >= 0)
);
CREATE INDEX IF NOT EXISTS products_shop_id_idx ON products (shop_id);`

const (
	findShopIDBySlugSQL = `SELECT id FROM shops WHERE slug = $1`
	getShopSQL          = `SELECT id, slug, name, floor, category, description FROM shops WHERE id = $1`
	listShopsSQL        = `SELECT id, slug, name, floor, category, description FROM shops ORDER BY name, id LIMIT $1 OFFSET $2`
	listProductsSQL     = `SELECT id, shop_id, name, price_cents FROM products WHERE shop_id = $1 ORDER BY name, id`
)

type CatalogRepository struct {
	db DB
}

func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

func NewCatalogRepository(db DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// FindShopIDBySlug returns pgx.ErrNoRows when no shop has slug.
func (r *CatalogRepository) FindShopIDBySlug(ctx context.Context, slug string) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, findShopIDBySlugSQL, slug).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CatalogRepository) GetShop(ctx context.Context, id int64) (domain.Shop, error) {
	var s domain.Shop
	err := r.db.QueryRow(ctx, getShopSQL, id).
		Scan(&s.ID, &s.Slug, &s.Name, &s.Floor, &s.Category, &s.Description)
	if err != nil {
		return domain.Shop{}, err
	}
	return s, nil
}

func (r *CatalogRepository) ListShops(ctx context.Context, page domain.Page) ([]domain.Shop, error) {
	rows, err := r.db.Query(ctx, listShopsSQL, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	shops := make([]domain.Shop, 0, page.Limit)
	for rows.Next() {
		var s domain.Shop
		if err := rows.Scan(&s.ID, &s.Slug, &s.Name, &s.Floor, &s.Category, &s.Description); err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shops: %w", err)
	}
	return shops, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context, shopID int64) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, listProductsSQL, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.ShopID, &p.Name, &p.PriceCents); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}
