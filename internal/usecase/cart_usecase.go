package usecase

import (
	"context"

	"chainmart/internal/domain/entity"
	"chainmart/internal/domain/repository"
	"chainmart/pkg/errors"
	"chainmart/pkg/metrics"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	marketRepo  repository.MarketRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(
	cartRepo repository.CartRepository,
	marketRepo repository.MarketRepository,
	productRepo repository.ProductRepository,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		marketRepo:  marketRepo,
		productRepo: productRepo,
	}
}

// AddCartItem snapshots the market name and the product's name, image
// and price into the cart entry at add time. Snapshots are only
// re-aligned by the explicit sync operations.
func (uc *CartUseCase) AddCartItem(ctx context.Context, address string, productID int64, wallet string) (*entity.CartItem, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	product, err := uc.productRepo.Get(ctx, address, productID)
	if err != nil {
		return nil, err
	}

	entry := &entity.CartItem{
		MarketPlaceAddress: address,
		ProductID:          productID,
		UserWallet:         wallet,
		MarketName:         market.Name,
		ProductName:        product.Name,
		ImageURI:           product.ProductImage1,
		Price:              product.Price,
	}

	if err := uc.cartRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (uc *CartUseCase) ListCart(ctx context.Context, wallet, sort string) ([]*entity.CartItem, error) {
	return uc.cartRepo.ListByWallet(ctx, wallet, sort)
}

func (uc *CartUseCase) ListMarketCart(ctx context.Context, address, wallet string) ([]*entity.CartItem, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	return uc.cartRepo.ListByMarketAndWallet(ctx, address, wallet)
}

func (uc *CartUseCase) RemoveCartItem(ctx context.Context, address string, productID int64, wallet string) error {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return err
	}
	if _, err := uc.productRepo.Get(ctx, address, productID); err != nil {
		return err
	}
	if _, err := uc.cartRepo.Get(ctx, address, productID, wallet); err != nil {
		return err
	}
	return uc.cartRepo.Delete(ctx, address, productID, wallet)
}

// ClearCart empties a wallet's cart across all marketplaces. An
// already empty cart clears to zero.
func (uc *CartUseCase) ClearCart(ctx context.Context, wallet string) (int64, error) {
	return uc.cartRepo.DeleteByWallet(ctx, wallet)
}

// PurgeMarketCartItems sweeps the cart entries of a marketplace that
// no longer exists.
func (uc *CartUseCase) PurgeMarketCartItems(ctx context.Context, address string) (int64, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err == nil {
		return 0, errors.Conflict("marketplace still exists, delete it first")
	} else if !errors.Is(err, "NOT_FOUND") {
		return 0, err
	}

	count, err := uc.cartRepo.DeleteByMarket(ctx, address)
	if err != nil {
		return 0, err
	}

	metrics.CascadeSweptTotal.WithLabelValues("cart_items").Add(float64(count))
	return count, nil
}

// SyncMarketName stamps the market's current name onto its cart
// entries after a rename.
func (uc *CartUseCase) SyncMarketName(ctx context.Context, address string) (int64, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return 0, err
	}
	return uc.cartRepo.SetMarketName(ctx, address, market.Name)
}

// SyncProductSnapshot re-aligns the name, image and price snapshots of
// cart entries holding the product.
func (uc *CartUseCase) SyncProductSnapshot(ctx context.Context, address string, productID int64) (int64, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return 0, err
	}
	product, err := uc.productRepo.Get(ctx, address, productID)
	if err != nil {
		return 0, err
	}
	return uc.cartRepo.SetProductSnapshot(ctx, address, productID, product.Name, product.ProductImage1, product.Price)
}
