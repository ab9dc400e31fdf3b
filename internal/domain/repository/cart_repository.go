package repository

import (
	"context"

	"chainmart/internal/domain/entity"
)

type CartRepository interface {
	Create(ctx context.Context, item *entity.CartItem) error
	Get(ctx context.Context, address string, productID int64, wallet string) (*entity.CartItem, error)
	ListByWallet(ctx context.Context, wallet string, sort string) ([]*entity.CartItem, error)
	ListByMarketAndWallet(ctx context.Context, address, wallet string) ([]*entity.CartItem, error)
	Delete(ctx context.Context, address string, productID int64, wallet string) error
	DeleteByWallet(ctx context.Context, wallet string) (int64, error)
	DeleteByMarket(ctx context.Context, address string) (int64, error)
	DeleteByProduct(ctx context.Context, address string, productID int64) (int64, error)
	SetMarketName(ctx context.Context, address, name string) (int64, error)
	SetProductSnapshot(ctx context.Context, address string, productID int64, name, imageURI string, price int64) (int64, error)
}
