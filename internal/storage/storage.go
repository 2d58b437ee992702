package storage

import "context"

// Well-known slot keys. The cart and the last completed order live in
// independent slots so clearing one never touches the other.
const (
	KeyCart      = "cart"
	KeyLastOrder = "last_order"
)

// Storage is a keyed slot store holding JSON-encoded text. It models
// the durable client-side storage of the original site: a flat
// key/value space with no transactions. Concurrent writers from
// separate processes can overwrite each other; that is a documented
// limitation of the slot model, not something any backend works around.
type Storage interface {
	// Get returns the value stored under key, or (nil, nil) when the
	// slot is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the slot; deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
}
