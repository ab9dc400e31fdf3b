package entity

import (
	"time"
)

// MarketReview is one wallet's review of a marketplace. At most one
// review per (market, wallet); the wallet must appear as buyer or
// owner on at least one Item in that market.
type MarketReview struct {
	MarketPlaceAddress string    `json:"marketPlaceAddress" firestore:"marketPlaceAddress"`
	UserWallet         string    `json:"userWallet" firestore:"userWallet"`
	Stars              int       `json:"stars" firestore:"stars"` // 1-10
	Review             string    `json:"review" firestore:"review"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// ProductReview is the same contract scoped to a single product.
type ProductReview struct {
	MarketPlaceAddress string    `json:"marketPlaceAddress" firestore:"marketPlaceAddress"`
	ProductID          int64     `json:"productId" firestore:"productId"`
	UserWallet         string    `json:"userWallet" firestore:"userWallet"`
	Stars              int       `json:"stars" firestore:"stars"` // 1-10
	Review             string    `json:"review" firestore:"review"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" firestore:"updatedAt"`
}
