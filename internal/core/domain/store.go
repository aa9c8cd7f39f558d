package domain

import "time"

// Store is a rateable business registered by an admin and owned by a user
// with the owner role.
type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreWithRating augments a store with its owner's email and the rounded
// average of its ratings. AvgRating is nil until the first rating lands.
type StoreWithRating struct {
	Store
	OwnerEmail string   `json:"owner_email,omitempty"`
	AvgRating  *float64 `json:"avg_rating"`
}
