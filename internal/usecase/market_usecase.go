package usecase

import (
	"context"

	"go.uber.org/zap"

	"chainmart/internal/domain/entity"
	"chainmart/internal/domain/repository"
	"chainmart/pkg/errors"
	"chainmart/pkg/logger"
	"chainmart/pkg/metrics"
)

type MarketUseCase struct {
	marketRepo        repository.MarketRepository
	productRepo       repository.ProductRepository
	marketReviewRepo  repository.MarketReviewRepository
	productReviewRepo repository.ProductReviewRepository
	cartRepo          repository.CartRepository
}

func NewMarketUseCase(
	marketRepo repository.MarketRepository,
	productRepo repository.ProductRepository,
	marketReviewRepo repository.MarketReviewRepository,
	productReviewRepo repository.ProductReviewRepository,
	cartRepo repository.CartRepository,
) *MarketUseCase {
	return &MarketUseCase{
		marketRepo:        marketRepo,
		productRepo:       productRepo,
		marketReviewRepo:  marketReviewRepo,
		productReviewRepo: productReviewRepo,
		cartRepo:          cartRepo,
	}
}

type CreateMarketInput struct {
	Name               string
	Description        string
	MarketOwner        string
	MarketLogo         string
	MarketBackground   string
	MarketTwitter      string
	MarketInsta        string
	MarketFacebook     string
	MarketYoutube      string
	MarketMail         string
	MarketID           int64
	MarketPlaceAddress string
	MarketItemAddress  string
}

type UpdateMarketDataInput struct {
	MarketOwner      string
	Name             string
	Description      string
	MarketLogo       string
	MarketBackground string
	MarketTwitter    string
	MarketInsta      string
	MarketFacebook   string
	MarketYoutube    string
	MarketMail       string
}

// MarketCascadeResult reports what a sequenced market delete swept.
// Items are never swept: they are records of past trades.
type MarketCascadeResult struct {
	Market              *entity.Market `json:"market"`
	ProductsSwept       int64          `json:"productsSwept"`
	ProductReviewsSwept int64          `json:"productReviewsSwept"`
	MarketReviewsSwept  int64          `json:"marketReviewsSwept"`
	CartItemsSwept      int64          `json:"cartItemsSwept"`
}

func (uc *MarketUseCase) CreateMarket(ctx context.Context, input CreateMarketInput) (*entity.Market, error) {
	// One owner, one marketplace; names and addresses are global.
	// The address check is backed by the keyed create below, the
	// owner and name checks are application-level only.
	if _, err := uc.marketRepo.GetByOwner(ctx, input.MarketOwner); err == nil {
		return nil, errors.Conflict("owner already has a marketplace")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if _, err := uc.marketRepo.GetByName(ctx, input.Name); err == nil {
		return nil, errors.Conflict("market name already exists")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if _, err := uc.marketRepo.GetByAddress(ctx, input.MarketPlaceAddress); err == nil {
		return nil, errors.Conflict("marketplace address already exists")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	market := &entity.Market{
		Name:               input.Name,
		Description:        input.Description,
		MarketOwner:        input.MarketOwner,
		MarketLogo:         input.MarketLogo,
		MarketBackground:   input.MarketBackground,
		MarketTwitter:      input.MarketTwitter,
		MarketInsta:        input.MarketInsta,
		MarketFacebook:     input.MarketFacebook,
		MarketYoutube:      input.MarketYoutube,
		MarketMail:         input.MarketMail,
		MarketID:           input.MarketID,
		MarketPlaceAddress: input.MarketPlaceAddress,
		MarketItemAddress:  input.MarketItemAddress,
	}

	if err := uc.marketRepo.Create(ctx, market); err != nil {
		return nil, err
	}

	metrics.MarketsCreatedTotal.Inc()
	return market, nil
}

// UpdateMarketData applies a partial update: empty input fields are
// left untouched. The caller must be the stored owner.
func (uc *MarketUseCase) UpdateMarketData(ctx context.Context, address string, input UpdateMarketDataInput) (*entity.Market, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if market.MarketOwner != input.MarketOwner {
		return nil, errors.Forbidden("you do not own this marketplace", nil)
	}

	if input.Name != "" && input.Name != market.Name {
		if _, err := uc.marketRepo.GetByName(ctx, input.Name); err == nil {
			return nil, errors.Conflict("market name already exists")
		} else if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		market.Name = input.Name
	}

	if input.Description != "" {
		market.Description = input.Description
	}
	if input.MarketLogo != "" {
		market.MarketLogo = input.MarketLogo
	}
	if input.MarketBackground != "" {
		market.MarketBackground = input.MarketBackground
	}
	if input.MarketTwitter != "" {
		market.MarketTwitter = input.MarketTwitter
	}
	if input.MarketInsta != "" {
		market.MarketInsta = input.MarketInsta
	}
	if input.MarketFacebook != "" {
		market.MarketFacebook = input.MarketFacebook
	}
	if input.MarketYoutube != "" {
		market.MarketYoutube = input.MarketYoutube
	}
	if input.MarketMail != "" {
		market.MarketMail = input.MarketMail
	}

	if err := uc.marketRepo.Update(ctx, market); err != nil {
		return nil, err
	}

	return market, nil
}

func (uc *MarketUseCase) UpdateMarketOwner(ctx context.Context, address, currentOwner, newOwner string) (*entity.Market, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if market.MarketOwner != currentOwner {
		return nil, errors.Forbidden("you do not own this marketplace", nil)
	}

	if _, err := uc.marketRepo.GetByOwner(ctx, newOwner); err == nil {
		return nil, errors.Conflict("new owner already has a marketplace")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	market.MarketOwner = newOwner
	if err := uc.marketRepo.Update(ctx, market); err != nil {
		return nil, err
	}

	return market, nil
}

// RecomputeRating sets the market rating to the arithmetic mean of
// stars across the market's reviews. An empty review set leaves the
// stored value untouched. Repeated calls with an unchanged review set
// land on the same value.
func (uc *MarketUseCase) RecomputeRating(ctx context.Context, address string) (*entity.Market, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.marketReviewRepo.ListByMarket(ctx, address)
	if err != nil {
		return nil, err
	}

	if len(reviews) > 0 {
		var total int
		for _, review := range reviews {
			total += review.Stars
		}
		rating := float64(total) / float64(len(reviews))

		if err := uc.marketRepo.SetRating(ctx, address, rating); err != nil {
			return nil, err
		}
		market.MarketRating = rating
	}

	return market, nil
}

// AddTradedVolume adds amount to the market's total traded volume.
// It never subtracts; invoking it exactly once per real trade is the
// caller's responsibility.
func (uc *MarketUseCase) AddTradedVolume(ctx context.Context, address string, amount int64) (*entity.Market, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if err := uc.marketRepo.IncrementTradedVolume(ctx, address, amount); err != nil {
		return nil, err
	}

	market.TotalTradedInUSD += amount
	return market, nil
}

func (uc *MarketUseCase) GetMarket(ctx context.Context, address string) (*entity.Market, error) {
	return uc.marketRepo.GetByAddress(ctx, address)
}

func (uc *MarketUseCase) GetMarketByOwner(ctx context.Context, owner string) (*entity.Market, error) {
	return uc.marketRepo.GetByOwner(ctx, owner)
}

func (uc *MarketUseCase) ListMarkets(ctx context.Context, sort string) ([]*entity.Market, error) {
	return uc.marketRepo.List(ctx, sort)
}

// DeleteMarket is the sequenced cascade: the market document goes
// first, then the dependent products, product reviews, market reviews
// and cart items are swept in bulk. Deleting the parent first keeps
// the cleanup operations' market-absent precondition satisfied if a
// sweep fails partway and has to be re-driven.
func (uc *MarketUseCase) DeleteMarket(ctx context.Context, address, owner string) (*MarketCascadeResult, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if market.MarketOwner != owner {
		return nil, errors.Forbidden("you do not own this marketplace", nil)
	}

	if err := uc.marketRepo.Delete(ctx, address); err != nil {
		return nil, err
	}

	result := &MarketCascadeResult{Market: market}

	if result.ProductsSwept, err = uc.productRepo.DeleteByMarket(ctx, address); err != nil {
		return nil, err
	}
	if result.ProductReviewsSwept, err = uc.productReviewRepo.DeleteByMarket(ctx, address); err != nil {
		return nil, err
	}
	if result.MarketReviewsSwept, err = uc.marketReviewRepo.DeleteByMarket(ctx, address); err != nil {
		return nil, err
	}
	if result.CartItemsSwept, err = uc.cartRepo.DeleteByMarket(ctx, address); err != nil {
		return nil, err
	}

	metrics.CascadeSweptTotal.WithLabelValues("products").Add(float64(result.ProductsSwept))
	metrics.CascadeSweptTotal.WithLabelValues("product_reviews").Add(float64(result.ProductReviewsSwept))
	metrics.CascadeSweptTotal.WithLabelValues("market_reviews").Add(float64(result.MarketReviewsSwept))
	metrics.CascadeSweptTotal.WithLabelValues("cart_items").Add(float64(result.CartItemsSwept))

	logger.Info("market deleted",
		zap.String("marketPlaceAddress", address),
		zap.Int64("productsSwept", result.ProductsSwept),
		zap.Int64("productReviewsSwept", result.ProductReviewsSwept),
		zap.Int64("marketReviewsSwept", result.MarketReviewsSwept),
		zap.Int64("cartItemsSwept", result.CartItemsSwept),
	)

	return result, nil
}
