package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainmart/pkg/errors"
)

func TestCreateProduct(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)

	product := env.seedProduct(t, 1, "Star Chart")
	assert.Equal(t, testMarketAddr, product.MarketPlaceAddress)
	assert.Zero(t, product.Rating)

	t.Run("missing market", func(t *testing.T) {
		_, err := env.product.CreateProduct(ctx, "0x9999999999999999999999999999999999999999", CreateProductInput{
			Name: "Ghost Product", MarketOwner: testOwnerWallet, ProductID: 1, Quantity: 1, Price: 1,
		})
		assert.True(t, errors.Is(err, "NOT_FOUND"))
	})

	t.Run("non owner rejected", func(t *testing.T) {
		_, err := env.product.CreateProduct(ctx, testMarketAddr, CreateProductInput{
			Name: "Intruder", MarketOwner: otherWallet, ProductID: 2, Quantity: 1, Price: 1,
		})
		assert.True(t, errors.Is(err, "FORBIDDEN"))
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		_, err := env.product.CreateProduct(ctx, testMarketAddr, CreateProductInput{
			Name: "Another Name", MarketOwner: testOwnerWallet, ProductID: 1, Quantity: 1, Price: 1,
		})
		assert.True(t, errors.Is(err, "CONFLICT"))
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := env.product.CreateProduct(ctx, testMarketAddr, CreateProductInput{
			Name: "Star Chart", MarketOwner: testOwnerWallet, ProductID: 2, Quantity: 1, Price: 1,
		})
		assert.True(t, errors.Is(err, "CONFLICT"))
	})
}

func TestUpdateProductData(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")

	quantity := int64(3)
	onSale := false
	product, err := env.product.UpdateProductData(ctx, testMarketAddr, 1, UpdateProductDataInput{
		MarketOwner: testOwnerWallet,
		Description: "updated description",
		Quantity:    &quantity,
		OnSale:      &onSale,
	})
	require.NoError(t, err)
	assert.Equal(t, "updated description", product.Description)
	assert.EqualValues(t, 3, product.Quantity)
	assert.False(t, product.OnSale)
	assert.Equal(t, "Star Chart", product.Name)
	assert.EqualValues(t, 250, product.Price)

	t.Run("non owner rejected", func(t *testing.T) {
		_, err := env.product.UpdateProductData(ctx, testMarketAddr, 1, UpdateProductDataInput{
			MarketOwner: otherWallet, Description: "nope",
		})
		assert.True(t, errors.Is(err, "FORBIDDEN"))
	})

	t.Run("rename to taken name rejected", func(t *testing.T) {
		env.seedProduct(t, 2, "Moon Globe")
		_, err := env.product.UpdateProductData(ctx, testMarketAddr, 1, UpdateProductDataInput{
			MarketOwner: testOwnerWallet, Name: "Moon Globe",
		})
		assert.True(t, errors.Is(err, "CONFLICT"))
	})
}

func TestRecomputeProductRating(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")
	env.seedItem(t, 1, 1, "Star Chart", testBuyerWallet)
	env.seedItem(t, 2, 1, "Star Chart", otherWallet)

	product, err := env.product.RecomputeRating(ctx, testMarketAddr, 1)
	require.NoError(t, err)
	assert.Zero(t, product.Rating)

	_, err = env.productReview.CreateReview(ctx, testMarketAddr, 1, ReviewInput{
		UserWallet: testBuyerWallet, Stars: 9, Review: "very accurate",
	})
	require.NoError(t, err)
	_, err = env.productReview.CreateReview(ctx, testMarketAddr, 1, ReviewInput{
		UserWallet: otherWallet, Stars: 6, Review: "paper too thin",
	})
	require.NoError(t, err)

	product, err = env.product.RecomputeRating(ctx, testMarketAddr, 1)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, product.Rating, 1e-9)
}

func TestProductUpdateKeepsRating(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")

	product, err := env.products.Get(ctx, testMarketAddr, 1)
	require.NoError(t, err)

	// A rating write lands between the read and the write.
	require.NoError(t, env.products.SetRating(ctx, testMarketAddr, 1, 8))

	product.Description = "a finer product"
	require.NoError(t, env.products.Update(ctx, product))

	stored, err := env.product.GetProduct(ctx, testMarketAddr, 1)
	require.NoError(t, err)
	assert.Equal(t, "a finer product", stored.Description)
	assert.InDelta(t, 8, stored.Rating, 1e-9)
}

func TestDeleteProductCascade(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")
	env.seedItem(t, 1, 1, "Star Chart", testBuyerWallet)

	_, err := env.productReview.CreateReview(ctx, testMarketAddr, 1, ReviewInput{
		UserWallet: testBuyerWallet, Stars: 9, Review: "very accurate",
	})
	require.NoError(t, err)
	_, err = env.cart.AddCartItem(ctx, testMarketAddr, 1, otherWallet)
	require.NoError(t, err)

	_, err = env.product.DeleteProduct(ctx, testMarketAddr, 1, otherWallet)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	result, err := env.product.DeleteProduct(ctx, testMarketAddr, 1, testOwnerWallet)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.ProductReviewsSwept)
	assert.EqualValues(t, 1, result.CartItemsSwept)

	_, err = env.product.GetProduct(ctx, testMarketAddr, 1)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	// The item record of the deleted product stays.
	items, err := env.item.ListBought(ctx, testBuyerWallet)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestPurgeMarketProducts(t *testing.T) {
	env := newUsecaseEnv()
	ctx := context.Background()
	env.seedMarket(t)
	env.seedProduct(t, 1, "Star Chart")

	t.Run("live market rejects purge", func(t *testing.T) {
		_, err := env.product.PurgeMarketProducts(ctx, testMarketAddr)
		assert.True(t, errors.Is(err, "CONFLICT"))
	})

	// Simulate the orphan state: market removed, products left behind.
	require.NoError(t, env.markets.Delete(ctx, testMarketAddr))

	count, err := env.product.PurgeMarketProducts(ctx, testMarketAddr)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	t.Run("purging nothing succeeds", func(t *testing.T) {
		count, err := env.product.PurgeMarketProducts(ctx, testMarketAddr)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
