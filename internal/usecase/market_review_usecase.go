package usecase

import (
	"context"

	"chainmart/internal/domain/entity"
	"chainmart/internal/domain/repository"
	"chainmart/pkg/errors"
	"chainmart/pkg/metrics"
)

type MarketReviewUseCase struct {
	reviewRepo repository.MarketReviewRepository
	marketRepo repository.MarketRepository
	itemRepo   repository.ItemRepository
}

func NewMarketReviewUseCase(
	reviewRepo repository.MarketReviewRepository,
	marketRepo repository.MarketRepository,
	itemRepo repository.ItemRepository,
) *MarketReviewUseCase {
	return &MarketReviewUseCase{
		reviewRepo: reviewRepo,
		marketRepo: marketRepo,
		itemRepo:   itemRepo,
	}
}

type ReviewInput struct {
	UserWallet string
	Stars      int
	Review     string
}

// CreateReview stores one review per wallet per marketplace. Only a
// wallet that bought or owns an item in the marketplace may review it.
func (uc *MarketReviewUseCase) CreateReview(ctx context.Context, address string, input ReviewInput) (*entity.MarketReview, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}

	traded, err := uc.itemRepo.HasMarketTrader(ctx, address, input.UserWallet)
	if err != nil {
		return nil, err
	}
	if !traded {
		return nil, errors.Forbidden("only buyers or owners of an item in this marketplace can review it", nil)
	}

	if _, err := uc.reviewRepo.Get(ctx, address, input.UserWallet); err == nil {
		return nil, errors.Conflict("you already reviewed this marketplace")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	review := &entity.MarketReview{
		MarketPlaceAddress: address,
		UserWallet:         input.UserWallet,
		Stars:              input.Stars,
		Review:             input.Review,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	metrics.ReviewsCreatedTotal.WithLabelValues("market").Inc()
	return review, nil
}

func (uc *MarketReviewUseCase) UpdateReview(ctx context.Context, address string, input ReviewInput) (*entity.MarketReview, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}

	review, err := uc.reviewRepo.Get(ctx, address, input.UserWallet)
	if err != nil {
		return nil, err
	}

	review.Stars = input.Stars
	review.Review = input.Review

	if err := uc.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *MarketReviewUseCase) GetReview(ctx context.Context, address, wallet string) (*entity.MarketReview, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	return uc.reviewRepo.Get(ctx, address, wallet)
}

func (uc *MarketReviewUseCase) ListReviews(ctx context.Context, address string) ([]*entity.MarketReview, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	return uc.reviewRepo.ListByMarket(ctx, address)
}

func (uc *MarketReviewUseCase) DeleteReview(ctx context.Context, address, wallet string) error {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return err
	}
	if _, err := uc.reviewRepo.Get(ctx, address, wallet); err != nil {
		return err
	}
	return uc.reviewRepo.Delete(ctx, address, wallet)
}

// PurgeMarketReviews sweeps the reviews of a marketplace that no
// longer exists. Deleting nothing is success.
func (uc *MarketReviewUseCase) PurgeMarketReviews(ctx context.Context, address string) (int64, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err == nil {
		return 0, errors.Conflict("marketplace still exists, delete it first")
	} else if !errors.Is(err, "NOT_FOUND") {
		return 0, err
	}

	count, err := uc.reviewRepo.DeleteByMarket(ctx, address)
	if err != nil {
		return 0, err
	}

	metrics.CascadeSweptTotal.WithLabelValues("market_reviews").Add(float64(count))
	return count, nil
}
