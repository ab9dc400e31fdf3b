package repository

import (
	"context"

	"chainmart/internal/domain/entity"
)

type MarketRepository interface {
	Create(ctx context.Context, market *entity.Market) error
	GetByAddress(ctx context.Context, address string) (*entity.Market, error)
	GetByOwner(ctx context.Context, owner string) (*entity.Market, error)
	GetByName(ctx context.Context, name string) (*entity.Market, error)
	List(ctx context.Context, sort string) ([]*entity.Market, error)
	Update(ctx context.Context, market *entity.Market) error
	SetRating(ctx context.Context, address string, rating float64) error
	IncrementTradedVolume(ctx context.Context, address string, amount int64) error
	Delete(ctx context.Context, address string) error
}
