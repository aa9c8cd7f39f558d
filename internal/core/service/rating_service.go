package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

// RatingService records user ratings for stores.
type RatingService struct {
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	logger  zerolog.Logger
}

func NewRatingService(stores ports.StoreRepository, ratings ports.RatingRepository, logger zerolog.Logger) *RatingService {
	return &RatingService{stores: stores, ratings: ratings, logger: logger}
}

// Submit upserts the caller's rating for a store and reports whether a new
// rating was created (false means an existing one was overwritten). Values
// outside 1-5 are rejected before touching the database; ratings for unknown
// stores yield domain.ErrStoreNotFound.
func (s *RatingService) Submit(ctx context.Context, userID, storeID int64, value int) (bool, error) {
	if value < domain.MinRating || value > domain.MaxRating {
		return false, domain.Validationf("rating must be between 1 and 5")
	}

	ok, err := s.stores.Exists(ctx, storeID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.ErrStoreNotFound
	}

	created, err := s.ratings.Upsert(ctx, &domain.Rating{
		StoreID:   storeID,
		UserID:    userID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return false, err
	}

	s.logger.Info().
		Int64("user_id", userID).
		Int64("store_id", storeID).
		Int("rating", value).
		Bool("created", created).
		Msg("rating submitted")
	return created, nil
}
