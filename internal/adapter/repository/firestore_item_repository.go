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

type firestoreItemRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRepository(client *firestore.Client) repository.ItemRepository {
	return &firestoreItemRepository{
		client: client,
	}
}

func itemDocID(address string, itemID int64) string {
	return fmt.Sprintf("%s_%d", address, itemID)
}

func (r *firestoreItemRepository) Create(ctx context.Context, item *entity.Item) error {
	item.CreatedAt = time.Now()

	docID := itemDocID(item.MarketPlaceAddress, item.ItemID)
	_, err := r.client.Collection("items").Doc(docID).Create(ctx, item)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("item id already exists in this market")
		}
		return errors.Internal("Failed to create item", err)
	}

	return nil
}

func (r *firestoreItemRepository) Get(ctx context.Context, address string, itemID int64) (*entity.Item, error) {
	doc, err := r.client.Collection("items").Doc(itemDocID(address, itemID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Item", err)
		}
		return nil, errors.Internal("Failed to get item", err)
	}

	var item entity.Item
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse item data", err)
	}

	return &item, nil
}

func (r *firestoreItemRepository) ListByMarket(ctx context.Context, address string) ([]*entity.Item, error) {
	query := r.client.Collection("items").Query.Where("marketPlaceAddress", "==", address)
	return r.list(ctx, query)
}

func (r *firestoreItemRepository) ListByProduct(ctx context.Context, address string, productID int64) ([]*entity.Item, error) {
	query := r.client.Collection("items").Query.
		Where("marketPlaceAddress", "==", address).
		Where("productId", "==", productID)
	return r.list(ctx, query)
}

func (r *firestoreItemRepository) ListByBuyerInMarket(ctx context.Context, address, buyer string) ([]*entity.Item, error) {
	query := r.client.Collection("items").Query.
		Where("marketPlaceAddress", "==", address).
		Where("buyer", "==", buyer)
	return r.list(ctx, query)
}

func (r *firestoreItemRepository) ListByOwnerInMarket(ctx context.Context, address, owner string) ([]*entity.Item, error) {
	query := r.client.Collection("items").Query.
		Where("marketPlaceAddress", "==", address).
		Where("owner", "==", owner)
	return r.list(ctx, query)
}

func (r *firestoreItemRepository) ListByBuyer(ctx context.Context, buyer string) ([]*entity.Item, error) {
	query := r.client.Collection("items").Query.Where("buyer", "==", buyer)
	return r.list(ctx, query)
}

func (r *firestoreItemRepository) ListByOwner(ctx context.Context, owner string) ([]*entity.Item, error) {
	query := r.client.Collection("items").Query.Where("owner", "==", owner)
	return r.list(ctx, query)
}

// Firestore has no OR filter on two fields, so buyer and owner are
// probed with separate single-document queries.
func (r *firestoreItemRepository) HasMarketTrader(ctx context.Context, address, wallet string) (bool, error) {
	base := r.client.Collection("items").Query.Where("marketPlaceAddress", "==", address)
	return r.hasTrader(ctx, base, wallet)
}

func (r *firestoreItemRepository) HasProductTrader(ctx context.Context, address string, productID int64, wallet string) (bool, error) {
	base := r.client.Collection("items").Query.
		Where("marketPlaceAddress", "==", address).
		Where("productId", "==", productID)
	return r.hasTrader(ctx, base, wallet)
}

func (r *firestoreItemRepository) hasTrader(ctx context.Context, base firestore.Query, wallet string) (bool, error) {
	for _, field := range []string{"buyer", "owner"} {
		iter := base.Where(field, "==", wallet).Limit(1).Documents(ctx)
		_, err := iter.Next()
		if err == nil {
			return true, nil
		}
		if err != iterator.Done {
			return false, errors.Internal("Failed to query items", err)
		}
	}

	return false, nil
}

func (r *firestoreItemRepository) SetMarketName(ctx context.Context, address, name string) (int64, error) {
	query := r.client.Collection("items").Where("marketPlaceAddress", "==", address)
	return updateAll(ctx, query, []firestore.Update{
		{Path: "marketName", Value: name},
	}, "items")
}

func (r *firestoreItemRepository) SetProductName(ctx context.Context, address string, productID int64, name string) (int64, error) {
	query := r.client.Collection("items").
		Where("marketPlaceAddress", "==", address).
		Where("productId", "==", productID)
	return updateAll(ctx, query, []firestore.Update{
		{Path: "productName", Value: name},
	}, "items")
}

func (r *firestoreItemRepository) list(ctx context.Context, query firestore.Query) ([]*entity.Item, error) {
	iter := query.Documents(ctx)
	var items []*entity.Item

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate items", err)
		}

		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
