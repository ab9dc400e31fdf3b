package usecase

import (
	"context"

	"chainmart/internal/domain/entity"
	"chainmart/internal/domain/repository"
	"chainmart/pkg/errors"
	"chainmart/pkg/metrics"
)

type ProductUseCase struct {
	productRepo       repository.ProductRepository
	marketRepo        repository.MarketRepository
	productReviewRepo repository.ProductReviewRepository
	cartRepo          repository.CartRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	marketRepo repository.MarketRepository,
	productReviewRepo repository.ProductReviewRepository,
	cartRepo repository.CartRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:       productRepo,
		marketRepo:        marketRepo,
		productReviewRepo: productReviewRepo,
		cartRepo:          cartRepo,
	}
}

type CreateProductInput struct {
	Name          string
	Description   string
	MarketOwner   string
	ProductID     int64
	ProductImage1 string
	ProductImage2 string
	ProductImage3 string
	Quantity      int64
	Price         int64
	OnSale        bool
}

type UpdateProductDataInput struct {
	MarketOwner   string
	Name          string
	Description   string
	ProductImage1 string
	ProductImage2 string
	ProductImage3 string
	Quantity      *int64
	Price         *int64
	OnSale        *bool
}

// ProductCascadeResult reports what a product delete swept along with
// the product itself.
type ProductCascadeResult struct {
	Product             *entity.Product `json:"product"`
	ProductReviewsSwept int64           `json:"productReviewsSwept"`
	CartItemsSwept      int64           `json:"cartItemsSwept"`
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, address string, input CreateProductInput) (*entity.Product, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if market.MarketOwner != input.MarketOwner {
		return nil, errors.Forbidden("only the marketplace owner can list products", nil)
	}

	// Numeric id and name are both unique within the market. The id
	// check is backed by the keyed create below.
	if _, err := uc.productRepo.Get(ctx, address, input.ProductID); err == nil {
		return nil, errors.Conflict("product id already exists in this marketplace")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if _, err := uc.productRepo.GetByName(ctx, address, input.Name); err == nil {
		return nil, errors.Conflict("product name already exists in this marketplace")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	product := &entity.Product{
		Name:               input.Name,
		Description:        input.Description,
		ProductID:          input.ProductID,
		MarketPlaceAddress: address,
		ProductImage1:      input.ProductImage1,
		ProductImage2:      input.ProductImage2,
		ProductImage3:      input.ProductImage3,
		Quantity:           input.Quantity,
		Price:              input.Price,
		OnSale:             input.OnSale,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	return product, nil
}

func (uc *ProductUseCase) UpdateProductData(ctx context.Context, address string, productID int64, input UpdateProductDataInput) (*entity.Product, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if market.MarketOwner != input.MarketOwner {
		return nil, errors.Forbidden("only the marketplace owner can update products", nil)
	}

	product, err := uc.productRepo.Get(ctx, address, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != product.Name {
		if _, err := uc.productRepo.GetByName(ctx, address, input.Name); err == nil {
			return nil, errors.Conflict("product name already exists in this marketplace")
		} else if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		product.Name = input.Name
	}

	if input.Description != "" {
		product.Description = input.Description
	}
	if input.ProductImage1 != "" {
		product.ProductImage1 = input.ProductImage1
	}
	if input.ProductImage2 != "" {
		product.ProductImage2 = input.ProductImage2
	}
	if input.ProductImage3 != "" {
		product.ProductImage3 = input.ProductImage3
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OnSale != nil {
		product.OnSale = *input.OnSale
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// RecomputeRating mirrors the market-level recompute at product scope:
// mean of stars, empty review set leaves the stored value untouched.
func (uc *ProductUseCase) RecomputeRating(ctx context.Context, address string, productID int64) (*entity.Product, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.Get(ctx, address, productID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.productReviewRepo.ListByProduct(ctx, address, productID)
	if err != nil {
		return nil, err
	}

	if len(reviews) > 0 {
		var total int
		for _, review := range reviews {
			total += review.Stars
		}
		rating := float64(total) / float64(len(reviews))

		if err := uc.productRepo.SetRating(ctx, address, productID, rating); err != nil {
			return nil, err
		}
		product.Rating = rating
	}

	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, address string, productID int64) (*entity.Product, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	return uc.productRepo.Get(ctx, address, productID)
}

func (uc *ProductUseCase) ListMarketProducts(ctx context.Context, address, sort string) ([]*entity.Product, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err != nil {
		return nil, err
	}
	return uc.productRepo.ListByMarket(ctx, address, sort)
}

// DeleteProduct removes the product and sweeps its reviews and cart
// snapshots. Items referencing the product are kept as trade history.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, address string, productID int64, owner string) (*ProductCascadeResult, error) {
	market, err := uc.marketRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}

	if market.MarketOwner != owner {
		return nil, errors.Forbidden("only the marketplace owner can delete products", nil)
	}

	product, err := uc.productRepo.Get(ctx, address, productID)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Delete(ctx, address, productID); err != nil {
		return nil, err
	}

	result := &ProductCascadeResult{Product: product}

	if result.ProductReviewsSwept, err = uc.productReviewRepo.DeleteByProduct(ctx, address, productID); err != nil {
		return nil, err
	}
	if result.CartItemsSwept, err = uc.cartRepo.DeleteByProduct(ctx, address, productID); err != nil {
		return nil, err
	}

	metrics.CascadeSweptTotal.WithLabelValues("product_reviews").Add(float64(result.ProductReviewsSwept))
	metrics.CascadeSweptTotal.WithLabelValues("cart_items").Add(float64(result.CartItemsSwept))

	return result, nil
}

// PurgeMarketProducts bulk-deletes every product of a marketplace that
// no longer exists. A live marketplace rejects the purge; deleting
// nothing is success.
func (uc *ProductUseCase) PurgeMarketProducts(ctx context.Context, address string) (int64, error) {
	if _, err := uc.marketRepo.GetByAddress(ctx, address); err == nil {
		return 0, errors.Conflict("marketplace still exists, delete it first")
	} else if !errors.Is(err, "NOT_FOUND") {
		return 0, err
	}

	count, err := uc.productRepo.DeleteByMarket(ctx, address)
	if err != nil {
		return 0, err
	}

	metrics.CascadeSweptTotal.WithLabelValues("products").Add(float64(count))
	return count, nil
}
