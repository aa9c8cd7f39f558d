package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

// StoreService implements store browsing and the owner dashboard.
type StoreService struct {
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	logger  zerolog.Logger
}

func NewStoreService(stores ports.StoreRepository, ratings ports.RatingRepository, logger zerolog.Logger) *StoreService {
	return &StoreService{stores: stores, ratings: ratings, logger: logger}
}

// List returns every store matching the filter with its aggregate rating.
// Callers with the user role also get their own ratings back, keyed by store
// id, so the client can show "your rating" alongside the average.
func (s *StoreService) List(ctx context.Context, callerID int64, callerRole domain.Role, filter ports.ListStoresFilter) (*ports.StoreListing, error) {
	stores, err := s.stores.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	listing := &ports.StoreListing{Stores: stores}
	if callerRole == domain.RoleUser {
		mine, err := s.ratings.ByUser(ctx, callerID)
		if err != nil {
			return nil, err
		}
		listing.MyRatings = mine
	}
	return listing, nil
}

// Dashboard loads the owner's store and its individual ratings. Owners
// without a store get domain.ErrStoreNotFound.
func (s *StoreService) Dashboard(ctx context.Context, ownerID int64, sort ports.RatingsSort) (*ports.OwnerDashboard, error) {
	store, err := s.stores.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratings.ForStore(ctx, store.ID, sort)
	if err != nil {
		return nil, err
	}

	return &ports.OwnerDashboard{Store: *store, Ratings: ratings}, nil
}
