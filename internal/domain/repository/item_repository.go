package repository

import (
	"context"

	"chainmart/internal/domain/entity"
)

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	Get(ctx context.Context, address string, itemID int64) (*entity.Item, error)
	ListByMarket(ctx context.Context, address string) ([]*entity.Item, error)
	ListByProduct(ctx context.Context, address string, productID int64) ([]*entity.Item, error)
	ListByBuyerInMarket(ctx context.Context, address, buyer string) ([]*entity.Item, error)
	ListByOwnerInMarket(ctx context.Context, address, owner string) ([]*entity.Item, error)
	ListByBuyer(ctx context.Context, buyer string) ([]*entity.Item, error)
	ListByOwner(ctx context.Context, owner string) ([]*entity.Item, error)

	// HasMarketTrader reports whether the wallet appears as buyer or
	// owner on at least one item in the market.
	HasMarketTrader(ctx context.Context, address, wallet string) (bool, error)
	HasProductTrader(ctx context.Context, address string, productID int64, wallet string) (bool, error)

	// Bulk field-sets for rename propagation; both return the number
	// of documents touched.
	SetMarketName(ctx context.Context, address, name string) (int64, error)
	SetProductName(ctx context.Context, address string, productID int64, name string) (int64, error)
}
