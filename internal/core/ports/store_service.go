package ports

import (
	"context"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
)

// StoreListing is the browsing view: all stores with aggregates, plus the
// caller's own ratings when the caller has the user role.
type StoreListing struct {
	Stores    []domain.StoreWithRating `json:"stores"`
	MyRatings map[int64]int            `json:"my_ratings,omitempty"`
}

// OwnerDashboard is the owner's view of their store and its ratings.
type OwnerDashboard struct {
	Store   domain.StoreWithRating `json:"store"`
	Ratings []domain.RatingDetail  `json:"ratings"`
}

// StoreService implements store browsing and the owner dashboard.
type StoreService interface {
	List(ctx context.Context, callerID int64, callerRole domain.Role, filter ListStoresFilter) (*StoreListing, error)
	// Dashboard returns domain.ErrStoreNotFound when the owner has no store.
	Dashboard(ctx context.Context, ownerID int64, sort RatingsSort) (*OwnerDashboard, error)
}

// RatingService records user ratings.
type RatingService interface {
	// Submit validates the value range and upserts the caller's rating,
	// reporting whether a new rating was created.
	Submit(ctx context.Context, userID, storeID int64, value int) (bool, error)
}
