package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"chainmart/internal/domain/entity"
	"chainmart/internal/domain/repository"
	"chainmart/pkg/errors"
)

type firestoreMarketReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreMarketReviewRepository(client *firestore.Client) repository.MarketReviewRepository {
	return &firestoreMarketReviewRepository{
		client: client,
	}
}

func marketReviewDocID(address, wallet string) string {
	return fmt.Sprintf("%s_%s", address, wallet)
}

func (r *firestoreMarketReviewRepository) Create(ctx context.Context, review *entity.MarketReview) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	docID := marketReviewDocID(review.MarketPlaceAddress, review.UserWallet)
	_, err := r.client.Collection("market_reviews").Doc(docID).Create(ctx, review)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("you have already reviewed this marketplace")
		}
		return errors.Internal("Failed to create market review", err)
	}

	return nil
}

func (r *firestoreMarketReviewRepository) Get(ctx context.Context, address, wallet string) (*entity.MarketReview, error) {
	doc, err := r.client.Collection("market_reviews").Doc(marketReviewDocID(address, wallet)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to get market review", err)
	}

	var review entity.MarketReview
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse market review data", err)
	}

	return &review, nil
}

func (r *firestoreMarketReviewRepository) ListByMarket(ctx context.Context, address string) ([]*entity.MarketReview, error) {
	query := r.client.Collection("market_reviews").Query.Where("marketPlaceAddress", "==", address)
	iter := query.Documents(ctx)
	var reviews []*entity.MarketReview

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate market reviews", err)
		}

		var review entity.MarketReview
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse market review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *firestoreMarketReviewRepository) Update(ctx context.Context, review *entity.MarketReview) error {
	review.UpdatedAt = time.Now()

	docID := marketReviewDocID(review.MarketPlaceAddress, review.UserWallet)
	_, err := r.client.Collection("market_reviews").Doc(docID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to update market review", err)
	}

	return nil
}

func (r *firestoreMarketReviewRepository) Delete(ctx context.Context, address, wallet string) error {
	_, err := r.client.Collection("market_reviews").Doc(marketReviewDocID(address, wallet)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete market review", err)
	}

	return nil
}

func (r *firestoreMarketReviewRepository) DeleteByMarket(ctx context.Context, address string) (int64, error) {
	query := r.client.Collection("market_reviews").Where("marketPlaceAddress", "==", address)
	return deleteAll(ctx, query, "market reviews")
}

type firestoreProductReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreProductReviewRepository(client *firestore.Client) repository.ProductReviewRepository {
	return &firestoreProductReviewRepository{
		client: client,
	}
}

func productReviewDocID(address string, productID int64, wallet string) string {
	return fmt.Sprintf("%s_%d_%s", address, productID, wallet)
}

func (r *firestoreProductReviewRepository) Create(ctx context.Context, review *entity.ProductReview) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	docID := productReviewDocID(review.MarketPlaceAddress, review.ProductID, review.UserWallet)
	_, err := r.client.Collection("product_reviews").Doc(docID).Create(ctx, review)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("you have already reviewed this product")
		}
		return errors.Internal("Failed to create product review", err)
	}

	return nil
}

func (r *firestoreProductReviewRepository) Get(ctx context.Context, address string, productID int64, wallet string) (*entity.ProductReview, error) {
	doc, err := r.client.Collection("product_reviews").Doc(productReviewDocID(address, productID, wallet)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to get product review", err)
	}

	var review entity.ProductReview
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse product review data", err)
	}

	return &review, nil
}

func (r *firestoreProductReviewRepository) ListByProduct(ctx context.Context, address string, productID int64) ([]*entity.ProductReview, error) {
	query := r.client.Collection("product_reviews").Query.
		Where("marketPlaceAddress", "==", address).
		Where("productId", "==", productID)
	iter := query.Documents(ctx)
	var reviews []*entity.ProductReview

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate product reviews", err)
		}

		var review entity.ProductReview
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse product review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *firestoreProductReviewRepository) Update(ctx context.Context, review *entity.ProductReview) error {
	review.UpdatedAt = time.Now()

	docID := productReviewDocID(review.MarketPlaceAddress, review.ProductID, review.UserWallet)
	_, err := r.client.Collection("product_reviews").Doc(docID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to update product review", err)
	}

	return nil
}

func (r *firestoreProductReviewRepository) Delete(ctx context.Context, address string, productID int64, wallet string) error {
	_, err := r.client.Collection("product_reviews").Doc(productReviewDocID(address, productID, wallet)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product review", err)
	}

	return nil
}

func (r *firestoreProductReviewRepository) DeleteByProduct(ctx context.Context, address string, productID int64) (int64, error) {
	query := r.client.Collection("product_reviews").
		Where("marketPlaceAddress", "==", address).
		Where("productId", "==", productID)
	return deleteAll(ctx, query, "product reviews")
}

func (r *firestoreProductReviewRepository) DeleteByMarket(ctx context.Context, address string) (int64, error) {
	query := r.client.Collection("product_reviews").Where("marketPlaceAddress", "==", address)
	return deleteAll(ctx, query, "product reviews")
}
