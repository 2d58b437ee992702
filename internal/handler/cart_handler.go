package handler

import (
	"encoding/json"
	"net/http"

	"shopfront/internal/cart"
	"shopfront/internal/catalog"
	"shopfront/internal/model"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// AddItemRequest is the payload for POST /api/cart/items.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UpdateItemRequest is the payload for PUT /api/cart/items/{productID}.
// Quantity is a pointer so an explicit zero (remove the line) survives
// the required check.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}

// CartResponse pairs the cart's line items with its computed totals.
type CartResponse struct {
	Items  []model.LineItem `json:"items"`
	Totals model.Totals     `json:"totals"`
}

// CartHandler handles cart mutation and review requests.
type CartHandler struct {
	cart     *cart.Store
	catalog  *catalog.Store
	validate *validatorv10.Validate
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartStore *cart.Store, catalogStore *catalog.Store, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cart:     cartStore,
		catalog:  catalogStore,
		validate: validatorv10.New(),
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items := h.cart.Items(r.Context())
	writeJSON(w, http.StatusOK, CartResponse{
		Items:  items,
		Totals: h.cart.Totals(r.Context()),
	})
}

// GetTotals handles GET /api/cart/totals.
func (h *CartHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cart.Totals(r.Context()))
}

// AddItem handles POST /api/cart/items. The product must exist in the
// catalogue; its current effective price is snapshotted into the line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "Invalid JSON body", h.logger)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		if req.Quantity < 1 && req.ProductID != "" {
			writeDomainError(w, r, http.StatusBadRequest, model.ErrInvalidQuantity, h.logger)
			return
		}
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "productId and a positive quantity are required", h.logger)
		return
	}

	h.catalog.EnsureLoaded(r.Context())
	product, ok := h.catalog.Product(req.ProductID)
	if !ok {
		writeDomainError(w, r, http.StatusNotFound, model.ErrProductNotFound, h.logger)
		return
	}

	items := h.cart.AddItem(r.Context(), product, req.Quantity)
	writeJSON(w, http.StatusOK, CartResponse{
		Items:  items,
		Totals: h.cart.Totals(r.Context()),
	})
}

// UpdateItem handles PUT /api/cart/items/{productID}. Quantity is an
// absolute set; zero removes the line. An unknown product id is a
// no-op, mirroring the store contract.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "Invalid JSON body", h.logger)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "quantity is required and cannot be negative", h.logger)
		return
	}

	items := h.cart.UpdateQuantity(r.Context(), productID, *req.Quantity)
	writeJSON(w, http.StatusOK, CartResponse{
		Items:  items,
		Totals: h.cart.Totals(r.Context()),
	})
}

// RemoveItem handles DELETE /api/cart/items/{productID}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	items := h.cart.RemoveItem(r.Context(), productID)
	writeJSON(w, http.StatusOK, CartResponse{
		Items:  items,
		Totals: h.cart.Totals(r.Context()),
	})
}

// ClearCart handles DELETE /api/cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	writeJSON(w, http.StatusOK, CartResponse{
		Items:  []model.LineItem{},
		Totals: model.Totals{},
	})
}
