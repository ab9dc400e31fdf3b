package entity

import (
	"time"
)

// Report is a user-submitted issue, independent of the marketplace
// domain. Deduplicated by exact issue text.
type Report struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Issue     string    `json:"issue" firestore:"issue"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
