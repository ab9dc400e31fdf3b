package entity

import (
	"time"
)

// CartItem is a snapshot of a product placed in a wallet's cart.
// MarketName, ProductName, ImageURI and Price are copied at add-time
// and drift from the live product until re-snapshotted explicitly.
type CartItem struct {
	MarketPlaceAddress string    `json:"marketPlaceAddress" firestore:"marketPlaceAddress"`
	ProductID          int64     `json:"productId" firestore:"productId"`
	UserWallet         string    `json:"userWallet" firestore:"userWallet"`
	MarketName         string    `json:"marketName" firestore:"marketName"`
	ProductName        string    `json:"productName" firestore:"productName"`
	ImageURI           string    `json:"imageURI" firestore:"imageURI"`
	Price              int64     `json:"price" firestore:"price"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt"`
}
