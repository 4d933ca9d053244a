package handler_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mallapi/internal/domain"
	"mallapi/internal/handler"
	"mallapi/internal/handler/mocks"
	"mallapi/internal/service"
	"mallapi/internal/validation"
)

func newTestHandler(t *testing.T) (*handler.Handler, *mocks.MockCatalogService, *mocks.MockQueryValidator) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := mocks.NewMockCatalogService(t)
	val := mocks.NewMockQueryValidator(t)
	return handler.New(svc, val, logger), svc, val
}

func newContext(target string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(params) == 2 {
		c.SetParamNames(params[0])
		c.SetParamValues(params[1])
	}
	return c, rec
}

var coffeeCorner = domain.Shop{ID: 7, Slug: "coffee-corner", Name: "Coffee Corner", Floor: 2, Category: "food"}

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandler(t)
	c, rec := newContext("/api/v1/health")

	require.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// ListShops tests

func TestListShops_Success(t *testing.T) {
	h, svc, val := newTestHandler(t)
	page := domain.Page{Limit: 5, Offset: 10}

	val.EXPECT().ParsePage("5", "10").Return(page, nil)
	svc.EXPECT().ListShops(mock.Anything, page).Return([]domain.Shop{coffeeCorner}, nil)

	c, rec := newContext("/api/v1/shops?limit=5&offset=10")

	require.NoError(t, h.ListShops(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"coffee-corner"`)
	assert.Contains(t, rec.Body.String(), `"page":{"limit":5,"offset":10}`)
}

func TestListShops_EmptyIsArray(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ParsePage("", "").Return(domain.Page{Limit: 20}, nil)
	svc.EXPECT().ListShops(mock.Anything, domain.Page{Limit: 20}).Return(nil, nil)

	c, rec := newContext("/api/v1/shops")

	require.NoError(t, h.ListShops(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"shops":[],"page":{"limit":20,"offset":0}}`, rec.Body.String())
}

func TestListShops_InvalidPage(t *testing.T) {
	h, _, val := newTestHandler(t)

	val.EXPECT().ParsePage("-1", "").
		Return(domain.Page{}, &validation.FieldError{Field: "limit", Err: validation.ErrInvalidLimit})

	c, rec := newContext("/api/v1/shops?limit=-1")

	require.NoError(t, h.ListShops(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "limit: limit must be a positive integer")
}

func TestListShops_ServiceError(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ParsePage("", "").Return(domain.Page{Limit: 20}, nil)
	svc.EXPECT().ListShops(mock.Anything, domain.Page{Limit: 20}).Return(nil, errors.New("db error"))

	c, rec := newContext("/api/v1/shops")

	require.NoError(t, h.ListShops(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to list shops"}`, rec.Body.String())
}

// GetShop tests

func TestGetShop_Success(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateSlug("coffee-corner").Return(nil)
	svc.EXPECT().GetShop(mock.Anything, "coffee-corner").Return(coffeeCorner, nil)

	c, rec := newContext("/api/v1/shops/coffee-corner", "slug", "coffee-corner")

	require.NoError(t, h.GetShop(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Coffee Corner"`)
}

func TestGetShop_Errors(t *testing.T) {
	tests := []struct {
		name       string
		slug       string
		validErr   error
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid slug",
			slug:       "Coffee_Corner",
			validErr:   validation.ErrInvalidSlug,
			wantStatus: http.StatusBadRequest,
			wantBody:   "slug may only contain",
		},
		{
			name:       "not found",
			slug:       "closed-shop",
			serviceErr: service.ErrShopNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "shop not found",
		},
		{
			name:       "service error",
			slug:       "coffee-corner",
			serviceErr: errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "failed to get shop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, val := newTestHandler(t)

			val.EXPECT().ValidateSlug(tt.slug).Return(tt.validErr)
			if tt.validErr == nil {
				svc.EXPECT().GetShop(mock.Anything, tt.slug).Return(domain.Shop{}, tt.serviceErr)
			}

			c, rec := newContext("/api/v1/shops/"+tt.slug, "slug", tt.slug)

			require.NoError(t, h.GetShop(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

// ListProducts tests

func TestListProducts_Success(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateSlug("coffee-corner").Return(nil)
	svc.EXPECT().ListProducts(mock.Anything, "coffee-corner").Return([]domain.Product{
		{ID: 1, ShopID: 7, Name: "Flat white", PriceCents: 350},
	}, nil)

	c, rec := newContext("/api/v1/shops/coffee-corner/products", "slug", "coffee-corner")

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"shop":"coffee-corner","products":[{"id":1,"shop_id":7,"name":"Flat white","price_cents":350}]}`,
		rec.Body.String())
}

func TestListProducts_NoProducts(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateSlug("empty-unit").Return(nil)
	svc.EXPECT().ListProducts(mock.Anything, "empty-unit").Return(nil, nil)

	c, rec := newContext("/api/v1/shops/empty-unit/products", "slug", "empty-unit")

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"shop":"empty-unit","products":[]}`, rec.Body.String())
}

func TestListProducts_NotFound(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateSlug("closed-shop").Return(nil)
	svc.EXPECT().ListProducts(mock.Anything, "closed-shop").
		Return(nil, errors.Join(errors.New("lookup"), service.ErrShopNotFound))

	c, rec := newContext("/api/v1/shops/closed-shop/products", "slug", "closed-shop")

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProducts_ServiceError(t *testing.T) {
	h, svc, val := newTestHandler(t)

	val.EXPECT().ValidateSlug("coffee-corner").Return(nil)
	svc.EXPECT().ListProducts(mock.Anything, "coffee-corner").Return(nil, errors.New("timeout"))

	c, rec := newContext("/api/v1/shops/coffee-corner/products", "slug", "coffee-corner")

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to list products"}`, rec.Body.String())
}
