package entity

import (
	"time"
)

// Item is a completed trade record. MarketName and ProductName are
// denormalized copies of the parent names taken at creation time; they
// are only refreshed through the explicit rename-propagation
// operations. Items outlive their Market and Product.
type Item struct {
	MarketPlaceAddress string    `json:"marketPlaceAddress" firestore:"marketPlaceAddress"`
	MarketItemAddress  string    `json:"marketItemAddress" firestore:"marketItemAddress"`
	ProductID          int64     `json:"productId" firestore:"productId"`
	ItemID             int64     `json:"itemId" firestore:"itemId"`
	ImageURI           string    `json:"imageURI" firestore:"imageURI"`
	MarketName         string    `json:"marketName" firestore:"marketName"`
	ProductName        string    `json:"productName" firestore:"productName"`
	Buyer              string    `json:"buyer" firestore:"buyer"`
	Owner              string    `json:"owner" firestore:"owner"`
	Price              int64     `json:"price" firestore:"price"`
	Quantity           int64     `json:"quantity" firestore:"quantity"`
	CollateralAddress  string    `json:"collateralAddress" firestore:"collateralAddress"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt"`
}
