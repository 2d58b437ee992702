package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/internal/model"
	"shopfront/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Notifier is called synchronously with the new item count after every
// mutation that persisted successfully. It drives the on-page cart
// indicator; a nil notifier disables it.
type Notifier func(itemCount int)

// Store owns the mutable cart state and is the sole writer of the cart
// slot. Storage problems never surface to callers: a missing or corrupt
// slot reads as an empty cart, and a failed write is logged and the
// in-memory result returned anyway. That mirrors how the shop degrades
// when browser storage is unavailable.
//
// Writes from concurrent processes sharing one storage backend can
// overwrite each other; the slot model has no cross-process locking and
// this is a documented limitation.
type Store struct {
	storage storage.Storage
	shop    config.ShopConfig
	notify  Notifier
	logger  zerolog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// NewStore creates a cart store over the given storage backend.
func NewStore(st storage.Storage, shop config.ShopConfig, notify Notifier, logger zerolog.Logger) *Store {
	return &Store{
		storage: st,
		shop:    shop,
		notify:  notify,
		logger:  logger.With().Str("component", "cart").Logger(),
		now:     time.Now,
	}
}

// Items returns the current line items in insertion order. An absent,
// corrupt or unreadable slot is an empty cart, never an error.
func (s *Store) Items(ctx context.Context) []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// AddItem adds quantity units of a product to the cart. A line already
// holding the product keeps its position and its first-add price
// snapshot and only its quantity grows; otherwise a new line is
// appended snapshotting the product's current effective price.
// Non-positive quantities are rejected silently and leave the cart
// unchanged. Returns the resulting line items.
func (s *Store) AddItem(ctx context.Context, product model.Product, quantity int) []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	if quantity <= 0 {
		s.logger.Debug().
			Str("product_id", product.ID).
			Int("quantity", quantity).
			Msg("ignoring add with non-positive quantity")
		return items
	}

	found := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}

	if !found {
		items = append(items, model.LineItem{
			ProductID:     product.ID,
			Name:          product.Name,
			Image:         product.Image,
			CollectionID:  product.CollectionID,
			UnitPrice:     catalog.EffectivePrice(product),
			OriginalPrice: product.Price,
			Quantity:      quantity,
		})
	}

	s.persist(ctx, items)
	return items
}

// UpdateQuantity sets a line's quantity to exactly the given value.
// Zero or negative removes the line entirely. Unknown product ids are a
// no-op. Returns the resulting line items.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) []model.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}

		if quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		s.persist(ctx, items)
		return items
	}

	return items
}

// RemoveItem removes the line for a product; no-op when absent.
func (s *Store) RemoveItem(ctx context.Context, productID string) []model.LineItem {
	return s.UpdateQuantity(ctx, productID, 0)
}

// Clear empties the cart and erases the persisted cart slot. The order
// slot is untouched.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, storage.KeyCart); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear cart slot")
	}
	if s.notify != nil {
		s.notify(0)
	}
}

// Totals computes the order totals for the current cart contents.
func (s *Store) Totals(ctx context.Context) model.Totals {
	return s.totalsFor(s.Items(ctx))
}

// SaveOrder builds an order snapshot from the current cart, persists it
// to the order slot and returns it. It deliberately does not clear the
// cart; checkout clears in a separate step so the two actions stay
// independently testable and orderable.
func (s *Store) SaveOrder(ctx context.Context) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	now := s.now()

	order := &model.Order{
		ID:          uuid.New(),
		OrderNumber: fmt.Sprintf("SF-%d", now.UnixMilli()),
		Items:       items,
		Totals:      s.totalsFor(items),
		CreatedAt:   now,
	}

	raw, err := json.Marshal(order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode order snapshot")
		return order
	}
	if err := s.storage.Set(ctx, storage.KeyLastOrder, raw); err != nil {
		s.logger.Error().Err(err).Str("order_number", order.OrderNumber).Msg("failed to persist order snapshot")
		return order
	}

	s.logger.Info().
		Str("order_number", order.OrderNumber).
		Int("item_count", order.Totals.ItemCount).
		Float64("total", order.Totals.Total).
		Msg("order snapshot saved")

	return order
}

// LastOrder returns the most recently saved order snapshot, or nil when
// none exists or the slot is corrupt.
func (s *Store) LastOrder(ctx context.Context) *model.Order {
	raw, err := s.storage.Get(ctx, storage.KeyLastOrder)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read order slot, treating as no order")
		return nil
	}
	if raw == nil {
		return nil
	}

	var order model.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt order slot, treating as no order")
		return nil
	}
	return &order
}

// load reads the cart slot. Callers must hold s.mu.
func (s *Store) load(ctx context.Context) []model.LineItem {
	raw, err := s.storage.Get(ctx, storage.KeyCart)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read cart slot, treating as empty cart")
		return []model.LineItem{}
	}
	if raw == nil {
		return []model.LineItem{}
	}

	var items []model.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt cart slot, treating as empty cart")
		return []model.LineItem{}
	}
	return items
}

// persist writes the cart slot and fires the notifier on success.
// Callers must hold s.mu.
func (s *Store) persist(ctx context.Context, items []model.LineItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode cart")
		return
	}
	if err := s.storage.Set(ctx, storage.KeyCart, raw); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist cart")
		return
	}

	if s.notify != nil {
		s.notify(itemCount(items))
	}
}

// totalsFor computes totals over the given items. Sums are carried in
// whole cents to keep float dust out of the comparisons.
func (s *Store) totalsFor(items []model.LineItem) model.Totals {
	subtotalCents := 0
	count := 0
	for _, item := range items {
		subtotalCents += toCents(item.UnitPrice) * item.Quantity
		count += item.Quantity
	}

	subtotal := float64(subtotalCents) / 100

	shipping := 0.0
	if subtotalCents > 0 && subtotal < s.shop.FreeShippingThreshold {
		shipping = s.shop.FlatShippingFee
	}

	return model.Totals{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     float64(subtotalCents+toCents(shipping)) / 100,
		ItemCount: count,
	}
}

func itemCount(items []model.LineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func toCents(amount float64) int {
	return int(math.Round(amount * 100))
}
