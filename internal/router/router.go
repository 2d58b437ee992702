package router

import (
	"net/http"

	"shopfront/internal/handler"
	"shopfront/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	fragmentHandler *handler.FragmentHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", catalogHandler.ListProducts)
			r.Get("/products/{productID}", catalogHandler.GetProduct)
			r.Get("/collections", catalogHandler.ListCollections)
			r.Get("/collections/{collectionID}", catalogHandler.GetCollection)
			r.Get("/collections/{collectionID}/products", catalogHandler.ListCollectionProducts)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Get("/totals", cartHandler.GetTotals)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productID}", cartHandler.UpdateItem)
			r.Delete("/items/{productID}", cartHandler.RemoveItem)
		})

		r.Post("/checkout", orderHandler.Checkout)
		r.Get("/orders/last", orderHandler.LastOrder)
	})

	r.Get("/fragments/collections/{collectionID}", fragmentHandler.CollectionGrid)

	return r
}
