package usecase

import (
	"context"

	"chainmart/internal/domain/entity"
	"chainmart/internal/domain/repository"
	"chainmart/pkg/errors"
	"chainmart/pkg/metrics"
)

type ItemUseCase struct {
	itemRepo    repository.ItemRepository
	marketRepo  repository.MarketRepository
	productRepo repository.ProductRepository
}

func NewItemUseCase(
	itemRepo repository.ItemRepository,
	marketRepo repository.MarketRepository,
	productRepo repository.ProductRepository,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:    itemRepo,
		marketRepo:  marketRepo,
		productRepo: productRepo,
	}
}

type CreateItemInput struct {
	ItemID            int64
	ImageURI          string
	MarketName        string
	ProductName       string
	Buyer             string
	Owner             string
	Price             int64
	Quantity          int64
	CollateralAddress string
}

// RecordItem writes a trade record. The submitted market and product
// names must match the stored ones at recording time; after that the
// item is never re-derived from its parents.
func (uc *ItemUseCase) RecordItem(ctx context.Context, address string, productID int64, input CreateItemInput) (*entity.Item, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if market.Name != input.MarketName {
		return nil, errors.BadRequest("market name does not match the marketplace", nil)
	}

	product, err := uc.productRepo.Get(ctx, address, productID)
	if err != nil {
		return nil, err
	}

	if product.Name != input.ProductName {
		return nil, errors.BadRequest("product name does not match the product", nil)
	}

	item := &entity.Item{
		MarketPlaceAddress: address,
		MarketItemAddress:  market.MarketItemAddress,
		ProductID:          productID,
		ItemID:             input.ItemID,
		ImageURI:           input.ImageURI,
		MarketName:         input.MarketName,
		ProductName:        input.ProductName,
		Buyer:              input.Buyer,
		Owner:              input.Owner,
		Price:              input.Price,
		Quantity:           input.Quantity,
		CollateralAddress:  input.CollateralAddress,
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	metrics.ItemsRecordedTotal.Inc()
	return item, nil
}

func (uc *ItemUseCase) GetItem(ctx context.Context, address string, itemID int64) (*entity.Item, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	return uc.itemRepo.Get(ctx, address, itemID)
}

func (uc *ItemUseCase) ListMarketItems(ctx context.Context, address string) ([]*entity.Item, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	return uc.itemRepo.ListByMarket(ctx, address)
}

func (uc *ItemUseCase) ListProductItems(ctx context.Context, address string, productID int64) ([]*entity.Item, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	if _, err := uc.productRepo.Get(ctx, address, productID); err != nil {
		return nil, err
	}
	return uc.itemRepo.ListByProduct(ctx, address, productID)
}

// Buyer and owner views work on item records alone, so they stay
// usable after the marketplace itself is gone.
func (uc *ItemUseCase) ListBoughtInMarket(ctx context.Context, address, buyer string) ([]*entity.Item, error) {
	return uc.itemRepo.ListByBuyerInMarket(ctx, address, buyer)
}

func (uc *ItemUseCase) ListOwnedInMarket(ctx context.Context, address, owner string) ([]*entity.Item, error) {
	return uc.itemRepo.ListByOwnerInMarket(ctx, address, owner)
}

func (uc *ItemUseCase) ListBought(ctx context.Context, buyer string) ([]*entity.Item, error) {
	return uc.itemRepo.ListByBuyer(ctx, buyer)
}

func (uc *ItemUseCase) ListOwned(ctx context.Context, owner string) ([]*entity.Item, error) {
	return uc.itemRepo.ListByOwner(ctx, owner)
}

// SyncMarketName stamps the market's current name onto every item of
// the market, re-aligning snapshots after a rename.
func (uc *ItemUseCase) SyncMarketName(ctx context.Context, address string) (int64, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return 0, err
	}
	return uc.itemRepo.SetMarketName(ctx, address, market.Name)
}

// SyncProductName does the same for a single product's items.
func (uc *ItemUseCase) SyncProductName(ctx context.Context, address string, productID int64) (int64, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return 0, err
	}
	product, err := uc.productRepo.Get(ctx, address, productID)
	if err != nil {
		return 0, err
	}
	return uc.itemRepo.SetProductName(ctx, address, productID, product.Name)
}
