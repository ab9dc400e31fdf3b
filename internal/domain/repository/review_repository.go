package repository

import (
	"context"

	"chainmart/internal/domain/entity"
)

type MarketReviewRepository interface {
	Create(ctx context.Context, review *entity.MarketReview) error
	Get(ctx context.Context, address, wallet string) (*entity.MarketReview, error)
	ListByMarket(ctx context.Context, address string) ([]*entity.MarketReview, error)
	Update(ctx context.Context, review *entity.MarketReview) error
	Delete(ctx context.Context, address, wallet string) error
	DeleteByMarket(ctx context.Context, address string) (int64, error)
}

type ProductReviewRepository interface {
	Create(ctx context.Context, review *entity.ProductReview) error
	Get(ctx context.Context, address string, productID int64, wallet string) (*entity.ProductReview, error)
	ListByProduct(ctx context.Context, address string, productID int64) ([]*entity.ProductReview, error)
	Update(ctx context.Context, review *entity.ProductReview) error
	Delete(ctx context.Context, address string, productID int64, wallet string) error
	DeleteByProduct(ctx context.Context, address string, productID int64) (int64, error)
	DeleteByMarket(ctx context.Context, address string) (int64, error)
}
