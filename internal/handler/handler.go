package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"mallapi/internal/domain"
	"mallapi/internal/service"
)

var (
	errShopNotFound       = map[string]string{"error": "shop not found"}
	errListShopsFailed    = map[string]string{"error": "failed to list shops"}
	errGetShopFailed      = map[string]string{"error": "failed to get shop"}
	errListProductsFailed = map[string]string{"error": "failed to list products"}
	respHealthOK          = domain.HealthResponse{Status: "ok"}
)

type Handler struct {
	catalog   CatalogService
	validator QueryValidator
	logger    *slog.Logger
}

func New(catalog CatalogService, validator QueryValidator, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:   catalog,
		validator: validator,
		logger:    logger,
	}
}

// Register mounts the public API. cached wraps the catalog reads, usually
// with the response cache.
func (h *Handler) Register(e *echo.Echo, cached ...echo.MiddlewareFunc) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)

	shops := api.Group("/shops", cached...)
	shops.GET("", h.ListShops)
	shops.GET("/:slug", h.GetShop)
	shops.GET("/:slug/products", h.ListProducts)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) ListShops(c echo.Context) error {
	page, err := h.validator.ParsePage(c.QueryParam("limit"), c.QueryParam("offset"))
	if err != nil {
		return validationError(c, err)
	}

	shops, err := h.catalog.ListShops(c.Request().Context(), page)
	if err != nil {
		h.logger.Error("failed to list shops", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errListShopsFailed)
	}

	return c.JSON(http.StatusOK, domain.ShopListResponse{Shops: orEmpty(shops), Page: page})
}

func (h *Handler) GetShop(c echo.Context) error {
	slug := c.Param("slug")
	if err := h.validator.ValidateSlug(slug); err != nil {
		return validationError(c, err)
	}

	shop, err := h.catalog.GetShop(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			return c.JSON(http.StatusNotFound, errShopNotFound)
		}
		h.logger.Error("failed to get shop", slog.String("slug", slug), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errGetShopFailed)
	}

	return c.JSON(http.StatusOK, shop)
}

func (h *Handler) ListProducts(c echo.Context) error {
	slug := c.Param("slug")
	if err := h.validator.ValidateSlug(slug); err != nil {
		return validationError(c, err)
	}

	products, err := h.catalog.ListProducts(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			return c.JSON(http.StatusNotFound, errShopNotFound)
		}
		h.logger.Error("failed to list products", slog.String("slug", slug), slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errListProductsFailed)
	}

	return c.JSON(http.StatusOK, domain.ProductListResponse{Shop: slug, Products: orEmpty(products)})
}

func validationError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// orEmpty keeps empty collections serialized as [] rather than null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
