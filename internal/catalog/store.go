package catalog

import (
	"context"
	"sync"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// Store provides read-only access to products and collections, loaded
// once per process lifetime. Lookups never return errors: an unknown id
// is an empty result, and a failed load resolves into the built-in
// fallback dataset.
type Store struct {
	loader Loader
	logger zerolog.Logger

	mu       sync.Mutex
	state    LoadState
	inflight chan struct{}

	products        []model.Product
	collections     []model.Collection
	productsByID    map[string]*model.Product
	collectionsByID map[string]*model.Collection
}

// NewStore creates a catalogue store backed by the given loader. No
// data is fetched until the first EnsureLoaded call.
func NewStore(loader Loader, logger zerolog.Logger) *Store {
	return &Store{
		loader: loader,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// EnsureLoaded loads the catalogue on first call and is a no-op
// afterwards. Concurrent callers share a single in-flight load; all of
// them observe the same resolved state. A loader failure is non-fatal
// and resolves into the fallback dataset.
func (s *Store) EnsureLoaded(ctx context.Context) LoadState {
	s.mu.Lock()
	if s.state != StatePending {
		state := s.state
		s.mu.Unlock()
		return state
	}

	if s.inflight != nil {
		done := s.inflight
		s.mu.Unlock()
		<-done
		s.mu.Lock()
		state := s.state
		s.mu.Unlock()
		return state
	}

	done := make(chan struct{})
	s.inflight = done
	s.mu.Unlock()

	dataset, err := s.loader.Load(ctx)
	state := StateLoaded
	if err != nil {
		s.logger.Warn().Err(err).Msg("catalogue load failed, using fallback dataset")
		dataset = fallbackDataset()
		state = StateFellBack
	}

	s.mu.Lock()
	s.install(dataset)
	s.state = state
	s.inflight = nil
	s.mu.Unlock()
	close(done)

	s.logger.Info().
		Stringer("state", state).
		Int("products", len(dataset.Products)).
		Int("collections", len(dataset.Collections)).
		Msg("catalogue ready")

	return state
}

// install builds the lookup tables and derives each collection's
// product ids from Product.CollectionID, preserving declaration order.
func (s *Store) install(dataset *model.Dataset) {
	s.products = dataset.Products
	s.collections = make([]model.Collection, len(dataset.Collections))
	copy(s.collections, dataset.Collections)

	s.productsByID = make(map[string]*model.Product, len(s.products))
	for i := range s.products {
		s.productsByID[s.products[i].ID] = &s.products[i]
	}

	s.collectionsByID = make(map[string]*model.Collection, len(s.collections))
	for i := range s.collections {
		s.collections[i].ProductIDs = nil
		s.collectionsByID[s.collections[i].ID] = &s.collections[i]
	}

	for i := range s.products {
		if c, ok := s.collectionsByID[s.products[i].CollectionID]; ok {
			c.ProductIDs = append(c.ProductIDs, s.products[i].ID)
		}
	}
}

// State reports which loading path was taken.
func (s *Store) State() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Product returns the product with the given id.
func (s *Store) Product(id string) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.productsByID[id]
	if !ok {
		return model.Product{}, false
	}
	return *p, true
}

// Collection returns the collection with the given id.
func (s *Store) Collection(id string) (model.Collection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collectionsByID[id]
	if !ok {
		return model.Collection{}, false
	}
	return *c, true
}

// CollectionProducts returns the products belonging to a collection in
// declaration order. Ids that no longer resolve are silently dropped;
// an unknown collection yields an empty slice.
func (s *Store) CollectionProducts(collectionID string) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collectionsByID[collectionID]
	if !ok {
		return []model.Product{}
	}

	products := make([]model.Product, 0, len(c.ProductIDs))
	for _, id := range c.ProductIDs {
		if p, ok := s.productsByID[id]; ok {
			products = append(products, *p)
		}
	}
	return products
}

// AllProducts returns every product in declaration order.
func (s *Store) AllProducts() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products
}

// AllCollections returns every collection in declaration order.
func (s *Store) AllCollections() []model.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	collections := make([]model.Collection, len(s.collections))
	copy(collections, s.collections)
	return collections
}
