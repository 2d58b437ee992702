package catalog

import (
	"context"

	"shopfront/internal/model"
)

// Loader defines the interface for fetching the catalogue dataset.
type Loader interface {
	// Load fetches the dataset from the backing source. Collections in
	// the source carry no product ids; the store derives them.
	Load(ctx context.Context) (*model.Dataset, error)
}

// LoadState reports which path catalogue loading took. Loading never
// fails outright: a broken source resolves to the built-in fallback
// dataset so the shop stays browsable in a degraded state.
type LoadState int

const (
	// StatePending means no load has completed yet.
	StatePending LoadState = iota

	// StateLoaded means the dataset came from the configured source.
	StateLoaded

	// StateFellBack means the source failed and the built-in dataset
	// is in use.
	StateFellBack
)

func (s LoadState) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateFellBack:
		return "fell_back"
	default:
		return "pending"
	}
}
