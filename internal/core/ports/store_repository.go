package ports

import (
	"context"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
)

// ListStoresFilter carries the store browsing query parameters. Substring
// filters are optional; sort fields outside the allowlist fall back to name
// ascending.
type ListStoresFilter struct {
	Name       string
	Address    string
	OwnerEmail string // admin dashboard only
	SortBy     string // name | avg_rating | created_at | address | owner_email
	Order      string // asc | desc
}

// StoreRepository defines persistence operations for stores.
type StoreRepository interface {
	// Create inserts a store. A duplicate (name, owner_id) pair yields
	// domain.ErrStoreExists.
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	// List returns stores with owner email and rounded average rating.
	List(ctx context.Context, filter ListStoresFilter) ([]domain.StoreWithRating, error)
	// FindByOwner returns the store owned by the given user, or
	// domain.ErrStoreNotFound when the owner has none.
	FindByOwner(ctx context.Context, ownerID int64) (*domain.StoreWithRating, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}
