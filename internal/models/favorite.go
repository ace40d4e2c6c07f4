package models

import "time"

// Favorite marks a third-party listing as saved by a renter.
type Favorite struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ListingID string    `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}
