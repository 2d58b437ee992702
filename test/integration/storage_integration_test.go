package integration

import (
	"context"
	"testing"

	"shopfront/internal/cart"
	"shopfront/internal/config"
	"shopfront/internal/model"
	"shopfront/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var integrationShop = config.ShopConfig{
	FreeShippingThreshold: 75.00,
	FlatShippingFee:       8.95,
	CurrencySymbol:        "$",
}

func TestRedisStorage_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testRedis := SetupTestRedis(t)
	ctx := context.Background()

	t.Run("slot round trip", func(t *testing.T) {
		FlushRedis(t, testRedis.Client)

		value, err := testRedis.Storage.Get(ctx, storage.KeyCart)
		require.NoError(t, err)
		assert.Nil(t, value)

		require.NoError(t, testRedis.Storage.Set(ctx, storage.KeyCart, []byte(`[{"productId":"p1"}]`)))

		value, err = testRedis.Storage.Get(ctx, storage.KeyCart)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[{"productId":"p1"}]`), value)

		require.NoError(t, testRedis.Storage.Delete(ctx, storage.KeyCart))
		value, err = testRedis.Storage.Get(ctx, storage.KeyCart)
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("slots are independent", func(t *testing.T) {
		FlushRedis(t, testRedis.Client)

		require.NoError(t, testRedis.Storage.Set(ctx, storage.KeyCart, []byte(`[]`)))
		require.NoError(t, testRedis.Storage.Set(ctx, storage.KeyLastOrder, []byte(`{"orderNumber":"SF-1"}`)))
		require.NoError(t, testRedis.Storage.Delete(ctx, storage.KeyCart))

		value, err := testRedis.Storage.Get(ctx, storage.KeyLastOrder)
		require.NoError(t, err)
		assert.NotNil(t, value)
	})
}

func TestCartOverRedis_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testRedis := SetupTestRedis(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	product := model.Product{ID: "cedar-smoke", Name: "Cedar & Smoke", Price: 38.00}

	t.Run("cart survives a store restart", func(t *testing.T) {
		FlushRedis(t, testRedis.Client)

		first := cart.NewStore(testRedis.Storage, integrationShop, nil, logger)
		first.AddItem(ctx, product, 2)

		second := cart.NewStore(testRedis.Storage, integrationShop, nil, logger)
		items := second.Items(ctx)

		require.Len(t, items, 1)
		assert.Equal(t, "cedar-smoke", items[0].ProductID)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, 38.00, items[0].UnitPrice)
	})

	t.Run("order snapshot survives cart clear", func(t *testing.T) {
		FlushRedis(t, testRedis.Client)

		store := cart.NewStore(testRedis.Storage, integrationShop, nil, logger)
		store.AddItem(ctx, product, 3)

		order := store.SaveOrder(ctx)
		store.Clear(ctx)

		assert.Empty(t, store.Items(ctx))

		last := store.LastOrder(ctx)
		require.NotNil(t, last)
		assert.Equal(t, order.OrderNumber, last.OrderNumber)
		assert.Equal(t, 114.00, last.Totals.Subtotal)
		assert.Equal(t, 0.0, last.Totals.Shipping)
	})
}
