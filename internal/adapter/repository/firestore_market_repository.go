package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"chainmart/internal/domain/entity"
	"chainmart/internal/domain/repository"
	"chainmart/pkg/errors"
)

type firestoreMarketRepository struct {
	client *firestore.Client
}

func NewFirestoreMarketRepository(client *firestore.Client) repository.MarketRepository {
	return &firestoreMarketRepository{
		client: client,
	}
}

// The marketplace address is the document ID, so a concurrent create
// of the same address fails at the store with AlreadyExists instead
// of racing past an application-level existence check.
func (r *firestoreMarketRepository) Create(ctx context.Context, market *entity.Market) error {
	now := time.Now()
	market.CreatedAt = now
	market.UpdatedAt = now

	_, err := r.client.Collection("markets").Doc(market.MarketPlaceAddress).Create(ctx, market)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("marketplace address already exists")
		}
		return errors.Internal("Failed to create market", err)
	}

	return nil
}

func (r *firestoreMarketRepository) GetByAddress(ctx context.Context, address string) (*entity.Market, error) {
	doc, err := r.client.Collection("markets").Doc(address).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Market", err)
		}
		return nil, errors.Internal("Failed to get market", err)
	}

	var market entity.Market
	if err := doc.DataTo(&market); err != nil {
		return nil, errors.Internal("Failed to parse market data", err)
	}

	return &market, nil
}

func (r *firestoreMarketRepository) GetByOwner(ctx context.Context, owner string) (*entity.Market, error) {
	return r.getOne(ctx, "marketOwner", owner)
}

func (r *firestoreMarketRepository) GetByName(ctx context.Context, name string) (*entity.Market, error) {
	return r.getOne(ctx, "name", name)
}

func (r *firestoreMarketRepository) getOne(ctx context.Context, field string, value interface{}) (*entity.Market, error) {
	query := r.client.Collection("markets").Where(field, "==", value).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()

	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Market", nil)
		}
		return nil, errors.Internal("Failed to query market", err)
	}

	var market entity.Market
	if err := doc.DataTo(&market); err != nil {
		return nil, errors.Internal("Failed to parse market data", err)
	}

	return &market, nil
}

func (r *firestoreMarketRepository) List(ctx context.Context, sort string) ([]*entity.Market, error) {
	query := r.client.Collection("markets").Query

	switch sort {
	case "name":
		query = query.OrderBy("name", firestore.Asc)
	case "rating":
		query = query.OrderBy("marketRating", firestore.Desc)
	case "volume":
		query = query.OrderBy("totalTradedInUSD", firestore.Asc)
	}

	iter := query.Documents(ctx)
	var markets []*entity.Market

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate markets", err)
		}

		var market entity.Market
		if err := doc.DataTo(&market); err != nil {
			return nil, errors.Internal("Failed to parse market data", err)
		}
		markets = append(markets, &market)
	}

	return markets, nil
}

// Update writes only the profile and owner fields. The derived
// marketRating and totalTradedInUSD stay untouched so a concurrent
// SetRating or IncrementTradedVolume is never overwritten with the
// caller's earlier read.
func (r *firestoreMarketRepository) Update(ctx context.Context, market *entity.Market) error {
	market.UpdatedAt = time.Now()

	_, err := r.client.Collection("markets").Doc(market.MarketPlaceAddress).Update(ctx, []firestore.Update{
		{Path: "name", Value: market.Name},
		{Path: "description", Value: market.Description},
		{Path: "marketOwner", Value: market.MarketOwner},
		{Path: "marketLogo", Value: market.MarketLogo},
		{Path: "marketBackground", Value: market.MarketBackground},
		{Path: "marketTwitter", Value: market.MarketTwitter},
		{Path: "marketInsta", Value: market.MarketInsta},
		{Path: "marketFacebook", Value: market.MarketFacebook},
		{Path: "marketYoutube", Value: market.MarketYoutube},
		{Path: "marketMail", Value: market.MarketMail},
		{Path: "updatedAt", Value: market.UpdatedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Market", err)
		}
		return errors.Internal("Failed to update market", err)
	}

	return nil
}

func (r *firestoreMarketRepository) SetRating(ctx context.Context, address string, rating float64) error {
	_, err := r.client.Collection("markets").Doc(address).Update(ctx, []firestore.Update{
		{Path: "marketRating", Value: rating},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to set market rating", err)
	}

	return nil
}

func (r *firestoreMarketRepository) IncrementTradedVolume(ctx context.Context, address string, amount int64) error {
	_, err := r.client.Collection("markets").Doc(address).Update(ctx, []firestore.Update{
		{Path: "totalTradedInUSD", Value: firestore.Increment(amount)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to increment traded volume", err)
	}

	return nil
}

func (r *firestoreMarketRepository) Delete(ctx context.Context, address string) error {
	_, err := r.client.Collection("markets").Doc(address).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete market", err)
	}

	return nil
}
