package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopfront/internal/cart"
	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/internal/handler"
	"shopfront/internal/model"
	"shopfront/internal/render"
	"shopfront/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLoader struct{ dataset *model.Dataset }

func (l staticLoader) Load(context.Context) (*model.Dataset, error) { return l.dataset, nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	shop := config.ShopConfig{
		FreeShippingThreshold: 75,
		FlatShippingFee:       8.95,
		CurrencySymbol:        "$",
	}

	catalogStore := catalog.NewStore(staticLoader{dataset: &model.Dataset{
		Collections: []model.Collection{{ID: "signature", Name: "Signature"}},
		Products: []model.Product{
			{ID: "cedar-smoke", Name: "Cedar & Smoke", Price: 38, CollectionID: "signature"},
		},
	}}, logger)
	cartStore := cart.NewStore(storage.NewMemoryStore(), shop, nil, logger)
	renderer := render.New(shop)

	return New(
		handler.NewCatalogHandler(catalogStore, logger),
		handler.NewCartHandler(cartStore, catalogStore, logger),
		handler.NewOrderHandler(cartStore, logger),
		handler.NewFragmentHandler(renderer, catalogStore, "", logger),
		logger,
	)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_AddToCartFlow(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"productId":"cedar-smoke","quantity":1}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cedar-smoke")
}

func TestRouter_CollectionFragment(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fragments/collections/signature", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "product-grid")
	assert.Contains(t, rec.Body.String(), "Cedar &amp; Smoke")
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
