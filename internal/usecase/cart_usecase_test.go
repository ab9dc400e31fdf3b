package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainmart/pkg/errors"
)

func TestAddCartItemSnapshots(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")

	entry, err := env.cart.AddCartItem(ctx, testMarketAddr, 1, testBuyerWallet)
	require.NoError(t, err)
	assert.Equal(t, "Nebula Bazaar", entry.MarketName)
	assert.Equal(t, "Star Chart", entry.ProductName)
	assert.EqualValues(t, 250, entry.Price)

	t.Run("duplicate entry rejected", func(t *testing.T) {
		_, err := env.cart.AddCartItem(ctx, testMarketAddr, 1, testBuyerWallet)
		assert.True(t, errors.Is(err, "CONFLICT"))
	})

	t.Run("missing product rejected", func(t *testing.T) {
		_, err := env.cart.AddCartItem(ctx, testMarketAddr, 99, testBuyerWallet)
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})
}

func TestCartSnapshotsAreStale(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")

	_, err := env.cart.AddCartItem(ctx, testMarketAddr, 1, testBuyerWallet)
	require.NoError(t, err)

	price := int64(999)
	_, err = env.product.UpdateProductData(ctx, testMarketAddr, 1, UpdateProductDataInput{
		MarketOwner: testOwnerWallet, Name: "Galaxy Chart", Price: &price,
	})
	require.NoError(t, err)

	// The snapshot does not follow the product until synced.
	entries, err := env.cart.ListCart(ctx, testBuyerWallet, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Star Chart", entries[0].ProductName)
	assert.EqualValues(t, 250, entries[0].Price)

	count, err := env.cart.SyncProductSnapshot(ctx, testMarketAddr, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	entries, err = env.cart.ListCart(ctx, testBuyerWallet, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Galaxy Chart", entries[0].ProductName)
	assert.EqualValues(t, 999, entries[0].Price)
}

func TestCartSyncMarketName(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")

	_, err := env.cart.AddCartItem(ctx, testMarketAddr, 1, testBuyerWallet)
	require.NoError(t, err)

	_, err = env.market.UpdateMarketData(ctx, testMarketAddr, UpdateMarketDataInput{
		MarketOwner: testOwnerWallet, Name: "Nebula Prime",
	})
	require.NoError(t, err)

	count, err := env.cart.SyncMarketName(ctx, testMarketAddr)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	entries, err := env.cart.ListMarketCart(ctx, testMarketAddr, testBuyerWallet)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Nebula Prime", entries[0].MarketName)
}

func TestCartSorting(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")

	expensive, err := env.product.CreateProduct(ctx, testMarketAddr, CreateProductInput{
		Name: "Telescope", MarketOwner: testOwnerWallet, ProductID: 2, Quantity: 1, Price: 5000, OnSale: true,
	})
	require.NoError(t, err)

	_, err = env.cart.AddCartItem(ctx, testMarketAddr, expensive.ProductID, testBuyerWallet)
	require.NoError(t, err)
	_, err = env.cart.AddCartItem(ctx, testMarketAddr, 1, testBuyerWallet)
	require.NoError(t, err)

	entries, err := env.cart.ListCart(ctx, testBuyerWallet, "price")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.EqualValues(t, 250, entries[0].Price)
	assert.EqualValues(t, 5000, entries[1].Price)
}

func TestClearCart(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")
	env.seedProduct(t, 2, "Moon Globe")

	_, err := env.cart.AddCartItem(ctx, testMarketAddr, 1, testBuyerWallet)
	require.NoError(t, err)
	_, err = env.cart.AddCartItem(ctx, testMarketAddr, 2, testBuyerWallet)
	require.NoError(t, err)

	count, err := env.cart.ClearCart(ctx, testBuyerWallet)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	t.Run("clearing an empty cart succeeds", func(t *testing.T) {
		count, err := env.cart.ClearCart(ctx, testBuyerWallet)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestRemoveCartItem(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")

	_, err := env.cart.AddCartItem(ctx, testMarketAddr, 1, testBuyerWallet)
	require.NoError(t, err)

	require.NoError(t, env.cart.RemoveCartItem(ctx, testMarketAddr, 1, testBuyerWallet))

	err = env.cart.RemoveCartItem(ctx, testMarketAddr, 1, testBuyerWallet)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestPurgeMarketCartItems(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")

	_, err := env.cart.AddCartItem(ctx, testMarketAddr, 1, testBuyerWallet)
	require.NoError(t, err)

	_, err = env.cart.PurgeMarketCartItems(ctx, testMarketAddr)
	assert.True(t, errors.Is(err, "CONFLICT"))

	require.NoError(t, env.markets.Delete(ctx, testMarketAddr))

	count, err := env.cart.PurgeMarketCartItems(ctx, testMarketAddr)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
