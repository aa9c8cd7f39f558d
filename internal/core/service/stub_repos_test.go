package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

func listFilter() ports.ListStoresFilter { return ports.ListStoresFilter{} }
func ratingsSort() ports.RatingsSort     { return ports.RatingsSort{} }

type stubUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1, users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	clone := *user
	clone.ID = r.nextID
	r.nextID++
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) List(_ context.Context, filter ports.ListUsersFilter) ([]domain.UserWithRating, error) {
	var out []domain.UserWithRating
	for _, u := range r.users {
		if filter.Name != "" && !strings.Contains(u.Name, filter.Name) {
			continue
		}
		if filter.Role != "" && string(u.Role) != filter.Role {
			continue
		}
		out = append(out, domain.UserWithRating{User: *u})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubStoreRepo struct {
	nextID int64
	stores map[int64]*domain.Store
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{nextID: 1, stores: make(map[int64]*domain.Store)}
}

func (r *stubStoreRepo) Create(_ context.Context, store *domain.Store) (*domain.Store, error) {
	for _, s := range r.stores {
		if s.Name == store.Name && s.OwnerID == store.OwnerID {
			return nil, domain.ErrStoreExists
		}
	}
	clone := *store
	clone.ID = r.nextID
	r.nextID++
	r.stores[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubStoreRepo) List(_ context.Context, _ ports.ListStoresFilter) ([]domain.StoreWithRating, error) {
	var out []domain.StoreWithRating
	for _, s := range r.stores {
		out = append(out, domain.StoreWithRating{Store: *s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubStoreRepo) FindByOwner(_ context.Context, ownerID int64) (*domain.StoreWithRating, error) {
	for _, s := range r.stores {
		if s.OwnerID == ownerID {
			return &domain.StoreWithRating{Store: *s}, nil
		}
	}
	return nil, domain.ErrStoreNotFound
}

func (r *stubStoreRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.stores[id]
	return ok, nil
}

func (r *stubStoreRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.stores)), nil
}

type ratingKey struct {
	storeID int64
	userID  int64
}

type stubRatingRepo struct {
	ratings map[ratingKey]*domain.Rating
}

func newStubRatingRepo() *stubRatingRepo {
	return &stubRatingRepo{ratings: make(map[ratingKey]*domain.Rating)}
}

func (r *stubRatingRepo) Upsert(_ context.Context, rating *domain.Rating) (bool, error) {
	key := ratingKey{storeID: rating.StoreID, userID: rating.UserID}
	_, existed := r.ratings[key]
	clone := *rating
	r.ratings[key] = &clone
	return !existed, nil
}

func (r *stubRatingRepo) ByUser(_ context.Context, userID int64) (map[int64]int, error) {
	out := make(map[int64]int)
	for key, rating := range r.ratings {
		if key.userID == userID {
			out[key.storeID] = rating.Value
		}
	}
	return out, nil
}

func (r *stubRatingRepo) ForStore(_ context.Context, storeID int64, _ ports.RatingsSort) ([]domain.RatingDetail, error) {
	var out []domain.RatingDetail
	for key, rating := range r.ratings {
		if key.storeID == storeID {
			out = append(out, domain.RatingDetail{Value: rating.Value, SubmittedAt: rating.CreatedAt})
		}
	}
	return out, nil
}

func (r *stubRatingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.ratings)), nil
}

// stubLoginGuard counts failures in memory with a fixed budget of 3.
type stubLoginGuard struct {
	failures map[string]int
}

func newStubLoginGuard() *stubLoginGuard {
	return &stubLoginGuard{failures: make(map[string]int)}
}

func (g *stubLoginGuard) Blocked(_ context.Context, email string) (bool, error) {
	return g.failures[email] >= 3, nil
}

func (g *stubLoginGuard) RecordFailure(_ context.Context, email string) error {
	g.failures[email]++
	return nil
}

func (g *stubLoginGuard) Reset(_ context.Context, email string) error {
	delete(g.failures, email)
	return nil
}
