package entity

import (
	"time"
)

// Product belongs to exactly one Market. Within a market both the
// productId and the name are unique. Rating is derived from product
// reviews on explicit recomputation.
type Product struct {
	Name               string    `json:"name" firestore:"name"`
	Description        string    `json:"description" firestore:"description"`
	ProductID          int64     `json:"productId" firestore:"productId"`
	MarketPlaceAddress string    `json:"marketPlaceAddress" firestore:"marketPlaceAddress"`
	ProductImage1      string    `json:"productImage1" firestore:"productImage1"`
	ProductImage2      string    `json:"productImage2" firestore:"productImage2"`
	ProductImage3      string    `json:"productImage3" firestore:"productImage3"`
	Quantity           int64     `json:"quantity" firestore:"quantity"`
	Price              int64     `json:"price" firestore:"price"`
	OnSale             bool      `json:"onSale" firestore:"onSale"`
	Rating             float64   `json:"rating" firestore:"rating"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" firestore:"updatedAt"`
}
