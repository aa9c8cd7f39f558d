package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is a single user's score for a store. A user holds at most one
// rating per store; resubmitting overwrites the previous value.
type Rating struct {
	StoreID   int64     `json:"store_id"`
	UserID    int64     `json:"user_id"`
	Value     int       `json:"rating_value"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingDetail is a rating joined with the rater's account details, as shown
// on the owner dashboard.
type RatingDetail struct {
	UserName    string    `json:"user_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	Value       int       `json:"rating_value"`
	SubmittedAt time.Time `json:"submitted_at"`
}
