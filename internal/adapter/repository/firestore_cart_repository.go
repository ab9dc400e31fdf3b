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

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func cartDocID(address string, productID int64, wallet string) string {
	return fmt.Sprintf("%s_%d_%s", address, productID, wallet)
}

func (r *firestoreCartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	item.CreatedAt = time.Now()

	docID := cartDocID(item.MarketPlaceAddress, item.ProductID, item.UserWallet)
	_, err := r.client.Collection("cart_items").Doc(docID).Create(ctx, item)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("item is already in cart")
		}
		return errors.Internal("Failed to create cart item", err)
	}

	return nil
}

func (r *firestoreCartRepository) Get(ctx context.Context, address string, productID int64, wallet string) (*entity.CartItem, error) {
	doc, err := r.client.Collection("cart_items").Doc(cartDocID(address, productID, wallet)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Cart item", err)
		}
		return nil, errors.Internal("Failed to get cart item", err)
	}

	var item entity.CartItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse cart item data", err)
	}

	return &item, nil
}

func (r *firestoreCartRepository) ListByWallet(ctx context.Context, wallet string, sort string) ([]*entity.CartItem, error) {
	query := r.client.Collection("cart_items").Query.Where("userWallet", "==", wallet)

	switch sort {
	case "price":
		query = query.OrderBy("price", firestore.Asc)
	case "market":
		query = query.OrderBy("marketName", firestore.Asc)
	}

	return r.list(ctx, query)
}

func (r *firestoreCartRepository) ListByMarketAndWallet(ctx context.Context, address, wallet string) ([]*entity.CartItem, error) {
	query := r.client.Collection("cart_items").Query.
		Where("marketPlaceAddress", "==", address).
		Where("userWallet", "==", wallet)
	return r.list(ctx, query)
}

func (r *firestoreCartRepository) Delete(ctx context.Context, address string, productID int64, wallet string) error {
	_, err := r.client.Collection("cart_items").Doc(cartDocID(address, productID, wallet)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete cart item", err)
	}

	return nil
}

func (r *firestoreCartRepository) DeleteByWallet(ctx context.Context, wallet string) (int64, error) {
	query := r.client.Collection("cart_items").Where("userWallet", "==", wallet)
	return deleteAll(ctx, query, "cart items")
}

func (r *firestoreCartRepository) DeleteByMarket(ctx context.Context, address string) (int64, error) {
	query := r.client.Collection("cart_items").Where("marketPlaceAddress", "==", address)
	return deleteAll(ctx, query, "cart items")
}

func (r *firestoreCartRepository) DeleteByProduct(ctx context.Context, address string, productID int64) (int64, error) {
	query := r.client.Collection("cart_items").
		Where("marketPlaceAddress", "==", address).
		Where("productId", "==", productID)
	return deleteAll(ctx, query, "cart items")
}

func (r *firestoreCartRepository) SetMarketName(ctx context.Context, address, name string) (int64, error) {
	query := r.client.Collection("cart_items").Where("marketPlaceAddress", "==", address)
	return updateAll(ctx, query, []firestore.Update{
		{Path: "marketName", Value: name},
	}, "cart items")
}

func (r *firestoreCartRepository) SetProductSnapshot(ctx context.Context, address string, productID int64, name, imageURI string, price int64) (int64, error) {
	query := r.client.Collection("cart_items").
		Where("marketPlaceAddress", "==", address).
		Where("productId", "==", productID)
	return updateAll(ctx, query, []firestore.Update{
		{Path: "productName", Value: name},
		{Path: "imageURI", Value: imageURI},
		{Path: "price", Value: price},
	}, "cart items")
}

func (r *firestoreCartRepository) list(ctx context.Context, query firestore.Query) ([]*entity.CartItem, error) {
	iter := query.Documents(ctx)
	var items []*entity.CartItem

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate cart items", err)
		}

		var item entity.CartItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse cart item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
