package handler

import (
	"net/http"

	"shopfront/internal/catalog"
	"shopfront/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CatalogHandler handles catalogue browsing requests.
type CatalogHandler struct {
	store  *catalog.Store
	logger zerolog.Logger
}

// NewCatalogHandler creates a new catalogue handler.
func NewCatalogHandler(store *catalog.Store, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		logger: logger.With().Str("handler", "catalog").Logger(),
	}
}

// ListProducts handles GET /api/catalog/products.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.store.EnsureLoaded(r.Context())
	writeJSON(w, http.StatusOK, h.store.AllProducts())
}

// GetProduct handles GET /api/catalog/products/{productID}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	h.store.EnsureLoaded(r.Context())

	id := chi.URLParam(r, "productID")
	product, ok := h.store.Product(id)
	if !ok {
		writeDomainError(w, r, http.StatusNotFound, model.ErrProductNotFound, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// ListCollections handles GET /api/catalog/collections.
func (h *CatalogHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	h.store.EnsureLoaded(r.Context())
	writeJSON(w, http.StatusOK, h.store.AllCollections())
}

// GetCollection handles GET /api/catalog/collections/{collectionID}.
func (h *CatalogHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	h.store.EnsureLoaded(r.Context())

	id := chi.URLParam(r, "collectionID")
	collection, ok := h.store.Collection(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, model.ErrCodeCollectionUnknown, "Collection not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, collection)
}

// ListCollectionProducts handles GET /api/catalog/collections/{collectionID}/products.
// An unknown collection is an empty list, matching the store contract.
func (h *CatalogHandler) ListCollectionProducts(w http.ResponseWriter, r *http.Request) {
	h.store.EnsureLoaded(r.Context())

	id := chi.URLParam(r, "collectionID")
	writeJSON(w, http.StatusOK, h.store.CollectionProducts(id))
}
