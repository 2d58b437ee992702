package handler

import (
	"net/http"

	"shopfront/internal/cart"
	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// OrderHandler handles the simulated checkout and the confirmation
// view's order lookup.
type OrderHandler struct {
	cart   *cart.Store
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(cartStore *cart.Store, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		cart:   cartStore,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /api/checkout. Saving the snapshot and clearing
// the cart are two explicit store calls, in that order, so the snapshot
// always reflects the cart as it was at completion.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if len(h.cart.Items(r.Context())) == 0 {
		writeDomainError(w, r, http.StatusUnprocessableEntity, model.ErrEmptyCart, h.logger)
		return
	}

	order := h.cart.SaveOrder(r.Context())
	h.cart.Clear(r.Context())

	h.logger.Info().
		Str("order_number", order.OrderNumber).
		Int("item_count", order.Totals.ItemCount).
		Msg("checkout completed")

	writeJSON(w, http.StatusCreated, order)
}

// LastOrder handles GET /api/orders/last.
func (h *OrderHandler) LastOrder(w http.ResponseWriter, r *http.Request) {
	order := h.cart.LastOrder(r.Context())
	if order == nil {
		writeDomainError(w, r, http.StatusNotFound, model.ErrNoOrder, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
