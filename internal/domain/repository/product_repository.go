package repository

import (
	"context"

	"chainmart/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Get(ctx context.Context, address string, productID int64) (*entity.Product, error)
	GetByName(ctx context.Context, address, name string) (*entity.Product, error)
	ListByMarket(ctx context.Context, address string, sort string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SetRating(ctx context.Context, address string, productID int64, rating float64) error
	Delete(ctx context.Context, address string, productID int64) error
	DeleteByMarket(ctx context.Context, address string) (int64, error)
}
