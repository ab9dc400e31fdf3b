package usecase

import (
	"context"

	"chainmart/internal/domain/entity"
	"chainmart/internal/domain/repository"
	"chainmart/pkg/errors"
	"chainmart/pkg/metrics"
)

type ProductReviewUseCase struct {
	reviewRepo  repository.ProductReviewRepository
	marketRepo  repository.MarketRepository
	productRepo repository.ProductRepository
	itemRepo    repository.ItemRepository
}

func NewProductReviewUseCase(
	reviewRepo repository.ProductReviewRepository,
	marketRepo repository.MarketRepository,
	productRepo repository.ProductRepository,
	itemRepo repository.ItemRepository,
) *ProductReviewUseCase {
	return &ProductReviewUseCase{
		reviewRepo:  reviewRepo,
		marketRepo:  marketRepo,
		productRepo: productRepo,
		itemRepo:    itemRepo,
	}
}

// CreateReview stores one review per wallet per product. Authorization
// is scoped to the product: the wallet must have bought or own an item
// of this product, trading elsewhere in the market is not enough.
func (uc *ProductReviewUseCase) CreateReview(ctx context.Context, address string, productID int64, input ReviewInput) (*entity.ProductReview, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	if _, err := uc.productRepo.Get(ctx, address, productID); err != nil {
		return nil, err
	}

	traded, err := uc.itemRepo.HasProductTrader(ctx, address, productID, input.UserWallet)
	if err != nil {
		return nil, err
	}
	if !traded {
		return nil, errors.Forbidden("only buyers or owners of an item of this product can review it", nil)
	}

	if _, err := uc.reviewRepo.Get(ctx, address, productID, input.UserWallet); err == nil {
		return nil, errors.Conflict("you already reviewed this product")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	review := &entity.ProductReview{
		MarketPlaceAddress: address,
		ProductID:          productID,
		UserWallet:         input.UserWallet,
		Stars:              input.Stars,
		Review:             input.Review,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	metrics.ReviewsCreatedTotal.WithLabelValues("product").Inc()
	return review, nil
}

func (uc *ProductReviewUseCase) UpdateReview(ctx context.Context, address string, productID int64, input ReviewInput) (*entity.ProductReview, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	if _, err := uc.productRepo.Get(ctx, address, productID); err != nil {
		return nil, err
	}

	review, err := uc.reviewRepo.Get(ctx, address, productID, input.UserWallet)
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

func (uc *ProductReviewUseCase) GetReview(ctx context.Context, address string, productID int64, wallet string) (*entity.ProductReview, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	if _, err := uc.productRepo.Get(ctx, address, productID); err != nil {
		return nil, err
	}
	return uc.reviewRepo.Get(ctx, address, productID, wallet)
}

func (uc *ProductReviewUseCase) ListReviews(ctx context.Context, address string, productID int64) ([]*entity.ProductReview, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	if _, err := uc.productRepo.Get(ctx, address, productID); err != nil {
		return nil, err
	}
	return uc.reviewRepo.ListByProduct(ctx, address, productID)
}

func (uc *ProductReviewUseCase) DeleteReview(ctx context.Context, address string, productID int64, wallet string) error {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return err
	}
	if _, err := uc.productRepo.Get(ctx, address, productID); err != nil {
		return err
	}
	if _, err := uc.reviewRepo.Get(ctx, address, productID, wallet); err != nil {
		return err
	}
	return uc.reviewRepo.Delete(ctx, address, productID, wallet)
}

// PurgeProductReviews sweeps the reviews of a product that was deleted
// from a still-existing marketplace.
func (uc *ProductReviewUseCase) PurgeProductReviews(ctx context.Context, address string, productID int64) (int64, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return 0, err
	}

	if _, err := uc.productRepo.Get(ctx, address, productID); err == nil {
		return 0, errors.Conflict("product still exists, delete it first")
	} else if !errors.Is(err, "NOT_FOUND") {
		return 0, err
	}

	count, err := uc.reviewRepo.DeleteByProduct(ctx, address, productID)
	if err != nil {
		return 0, err
	}

	metrics.CascadeSweptTotal.WithLabelValues("product_reviews").Add(float64(count))
	return count, nil
}

// PurgeMarketProductReviews sweeps every product review of a
// marketplace that no longer exists.
func (uc *ProductReviewUseCase) PurgeMarketProductReviews(ctx context.Context, address string) (int64, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err == nil {
		return 0, errors.Conflict("marketplace still exists, delete it first")
	} else if !errors.Is(err, "NOT_FOUND") {
		return 0, err
	}

	count, err := uc.reviewRepo.DeleteByMarket(ctx, address)
	if err != nil {
		return 0, err
	}

	metrics.CascadeSweptTotal.WithLabelValues("product_reviews").Add(float64(count))
	return count, nil
}
