package storage

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Absent slot reads as nil, nil.
	value, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Set(ctx, KeyCart, []byte(`[{"productId":"p1"}]`)))

	value, err = store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"productId":"p1"}]`), value)

	require.NoError(t, store.Delete(ctx, KeyCart))

	value, err = store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestMemoryStore_SlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, KeyCart, []byte(`[]`)))
	require.NoError(t, store.Set(ctx, KeyLastOrder, []byte(`{"orderNumber":"SF-1"}`)))

	require.NoError(t, store.Delete(ctx, KeyCart))

	value, err := store.Get(ctx, KeyLastOrder)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"orderNumber":"SF-1"}`), value)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, KeyCart, []byte("abc")))

	value, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	value[0] = 'x'

	again, err := store.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	value, err := store.Get(ctx, KeyLastOrder)
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, store.Set(ctx, KeyLastOrder, []byte(`{"orderNumber":"SF-42"}`)))

	value, err = store.Get(ctx, KeyLastOrder)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"orderNumber":"SF-42"}`), value)

	// Overwrite replaces the previous value entirely.
	require.NoError(t, store.Set(ctx, KeyLastOrder, []byte(`{}`)))
	value, err = store.Get(ctx, KeyLastOrder)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), value)

	require.NoError(t, store.Delete(ctx, KeyLastOrder))
	value, err = store.Get(ctx, KeyLastOrder)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestFileStore_DeleteAbsentSlot(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	logger := zerolog.Nop()

	store, err := NewFileStore(dir, logger)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeyCart, []byte(`[{"productId":"p1","quantity":2}]`)))

	// A fresh store over the same directory sees the same slots, the
	// way a page reload sees the same browser storage.
	reopened, err := NewFileStore(dir, logger)
	require.NoError(t, err)

	value, err := reopened.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"productId":"p1","quantity":2}]`), value)
}
