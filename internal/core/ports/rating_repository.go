package ports

import (
	"context"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
)

// RatingsSort orders the owner dashboard's rating list. Field values outside
// the allowlist fall back to user_name ascending.
type RatingsSort struct {
	Field string // user_name | email | rating_value | submitted_at | created_at
	Order string // asc | desc
}

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	// Upsert inserts the rating or overwrites the caller's previous rating
	// for the same store. It reports whether a new row was created.
	Upsert(ctx context.Context, rating *domain.Rating) (created bool, err error)
	// ByUser returns the caller's ratings keyed by store id.
	ByUser(ctx context.Context, userID int64) (map[int64]int, error)
	// ForStore returns all ratings for a store joined with rater details.
	ForStore(ctx context.Context, storeID int64, sort RatingsSort) ([]domain.RatingDetail, error)
	Count(ctx context.Context) (int64, error)
}
