package entity

import (
	"time"
)

// Market is one tenant marketplace, keyed by its 42-character
// marketplace address. MarketRating and TotalTradedInUSD are derived
// fields, recomputed only on explicit request.
type Market struct {
	Name               string    `json:"name" firestore:"name"`
	Description        string    `json:"description" firestore:"description"`
	MarketOwner        string    `json:"marketOwner" firestore:"marketOwner"`
	MarketLogo         string    `json:"marketLogo" firestore:"marketLogo"`
	MarketBackground   string    `json:"marketBackground" firestore:"marketBackground"`
	MarketTwitter      string    `json:"marketTwitter" firestore:"marketTwitter"`
	MarketInsta        string    `json:"marketInsta" firestore:"marketInsta"`
	MarketFacebook     string    `json:"marketFacebook" firestore:"marketFacebook"`
	MarketYoutube      string    `json:"marketYoutube" firestore:"marketYoutube"`
	MarketMail         string    `json:"marketMail" firestore:"marketMail"`
	MarketID           int64     `json:"marketId" firestore:"marketId"`
	MarketPlaceAddress string    `json:"marketPlaceAddress" firestore:"marketPlaceAddress"`
	MarketItemAddress  string    `json:"marketItemAddress" firestore:"marketItemAddress"`
	MarketRating       float64   `json:"marketRating" firestore:"marketRating"`
	TotalTradedInUSD   int64     `json:"totalTradedInUSD" firestore:"totalTradedInUSD"`
	CreatedAt          time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" firestore:"updatedAt"`
}
