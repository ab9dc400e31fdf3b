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

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func productDocID(address string, productID int64) string {
	return fmt.Sprintf("%s_%d", address, productID)
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	docID := productDocID(product.MarketPlaceAddress, product.ProductID)
	_, err := r.client.Collection("products").Doc(docID).Create(ctx, product)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("product id already exists in this market")
		}
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Get(ctx context.Context, address string, productID int64) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(productDocID(address, productID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) GetByName(ctx context.Context, address, name string) (*entity.Product, error) {
	query := r.client.Collection("products").
		Where("marketPlaceAddress", "==", address).
		Where("name", "==", name).
		Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()

	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Product", nil)
		}
		return nil, errors.Internal("Failed to query product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) ListByMarket(ctx context.Context, address string, sort string) ([]*entity.Product, error) {
	query := r.client.Collection("products").Query.Where("marketPlaceAddress", "==", address)

	switch sort {
	case "name":
		query = query.OrderBy("name", firestore.Asc)
	case "rating":
		query = query.OrderBy("rating", firestore.Asc)
	case "price":
		query = query.OrderBy("price", firestore.Asc)
	}

	iter := query.Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}
		products = append(products, &product)
	}

	return products, nil
}

// Update writes only the listing fields. The derived rating stays
// untouched so a concurrent SetRating is never overwritten with the
// caller's earlier read.
func (r *firestoreProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()

	docID := productDocID(product.MarketPlaceAddress, product.ProductID)
	_, err := r.client.Collection("products").Doc(docID).Update(ctx, []firestore.Update{
		{Path: "name", Value: product.Name},
		{Path: "description", Value: product.Description},
		{Path: "productImage1", Value: product.ProductImage1},
		{Path: "productImage2", Value: product.ProductImage2},
		{Path: "productImage3", Value: product.ProductImage3},
		{Path: "quantity", Value: product.Quantity},
		{Path: "price", Value: product.Price},
		{Path: "onSale", Value: product.OnSale},
		{Path: "updatedAt", Value: product.UpdatedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) SetRating(ctx context.Context, address string, productID int64, rating float64) error {
	_, err := r.client.Collection("products").Doc(productDocID(address, productID)).Update(ctx, []firestore.Update{
		{Path: "rating", Value: rating},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to set product rating", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, address string, productID int64) error {
	_, err := r.client.Collection("products").Doc(productDocID(address, productID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete product", err)
	}

	return nil
}

func (r *firestoreProductRepository) DeleteByMarket(ctx context.Context, address string) (int64, error) {
	query := r.client.Collection("products").Where("marketPlaceAddress", "==", address)
	return deleteAll(ctx, query, "products")
}
