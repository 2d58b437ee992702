package handler

import (
	"net/http"

	"shopfront/internal/catalog"
	"shopfront/internal/render"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// FragmentHandler serves pre-rendered HTML fragments for the page
// surface to inject into the document.
type FragmentHandler struct {
	renderer *render.Renderer
	catalog  *catalog.Store
	basePath string
	logger   zerolog.Logger
}

// NewFragmentHandler creates a new fragment handler.
func NewFragmentHandler(renderer *render.Renderer, catalogStore *catalog.Store, basePath string, logger zerolog.Logger) *FragmentHandler {
	return &FragmentHandler{
		renderer: renderer,
		catalog:  catalogStore,
		basePath: basePath,
		logger:   logger.With().Str("handler", "fragment").Logger(),
	}
}

// CollectionGrid handles GET /fragments/collections/{collectionID}.
// Unknown collections yield an empty 200 body: a missing grid never
// fails the surrounding page.
func (h *FragmentHandler) CollectionGrid(w http.ResponseWriter, r *http.Request) {
	h.catalog.EnsureLoaded(r.Context())

	id := chi.URLParam(r, "collectionID")
	fragment := h.renderer.CollectionGrid(h.catalog, id, h.basePath)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(fragment))
}
