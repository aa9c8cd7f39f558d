package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
)

func seedStore(t *testing.T, repo *stubStoreRepo, ownerID int64) *domain.Store {
	t.Helper()
	store, err := repo.Create(context.Background(), &domain.Store{
		Name:      "Corner Shop",
		Address:   "1 Main Street",
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func TestRatingService_Submit_CreateThenUpdate(t *testing.T) {
	stores := newStubStoreRepo()
	ratings := newStubRatingRepo()
	svc := NewRatingService(stores, ratings, zerolog.Nop())
	store := seedStore(t, stores, 10)

	created, err := svc.Submit(context.Background(), 1, store.ID, 4)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !created {
		t.Fatal("first submission should create")
	}

	created, err = svc.Submit(context.Background(), 1, store.ID, 2)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if created {
		t.Fatal("second submission should overwrite, not create")
	}

	mine, err := ratings.ByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if mine[store.ID] != 2 {
		t.Fatalf("expected overwritten value 2, got %d", mine[store.ID])
	}
}

func TestRatingService_Submit_OutOfRange(t *testing.T) {
	stores := newStubStoreRepo()
	svc := NewRatingService(stores, newStubRatingRepo(), zerolog.Nop())
	store := seedStore(t, stores, 10)

	for _, v := range []int{0, 6, -1} {
		if _, err := svc.Submit(context.Background(), 1, store.ID, v); !domain.IsValidation(err) {
			t.Fatalf("expected validation error for value %d, got %v", v, err)
		}
	}
}

func TestRatingService_Submit_UnknownStore(t *testing.T) {
	svc := NewRatingService(newStubStoreRepo(), newStubRatingRepo(), zerolog.Nop())

	if _, err := svc.Submit(context.Background(), 1, 999, 3); err != domain.ErrStoreNotFound {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestStoreService_List_UserGetsOwnRatings(t *testing.T) {
	stores := newStubStoreRepo()
	ratings := newStubRatingRepo()
	store := seedStore(t, stores, 10)
	if _, err := ratings.Upsert(context.Background(), &domain.Rating{StoreID: store.ID, UserID: 1, Value: 5}); err != nil {
		t.Fatalf("seed rating: %v", err)
	}

	svc := NewStoreService(stores, ratings, zerolog.Nop())

	listing, err := svc.List(context.Background(), 1, domain.RoleUser, listFilter())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listing.Stores) != 1 {
		t.Fatalf("expected 1 store, got %d", len(listing.Stores))
	}
	if listing.MyRatings[store.ID] != 5 {
		t.Fatalf("expected my rating 5, got %d", listing.MyRatings[store.ID])
	}

	// Admins browsing the same listing carry no personal ratings.
	listing, err = svc.List(context.Background(), 2, domain.RoleAdmin, listFilter())
	if err != nil {
		t.Fatalf("list as admin: %v", err)
	}
	if listing.MyRatings != nil {
		t.Fatalf("expected no my_ratings for admin, got %v", listing.MyRatings)
	}
}

func TestStoreService_Dashboard_NoStore(t *testing.T) {
	svc := NewStoreService(newStubStoreRepo(), newStubRatingRepo(), zerolog.Nop())

	if _, err := svc.Dashboard(context.Background(), 10, ratingsSort()); err != domain.ErrStoreNotFound {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestStoreService_Dashboard(t *testing.T) {
	stores := newStubStoreRepo()
	ratings := newStubRatingRepo()
	store := seedStore(t, stores, 10)
	for userID, value := range map[int64]int{1: 5, 2: 3} {
		if _, err := ratings.Upsert(context.Background(), &domain.Rating{StoreID: store.ID, UserID: userID, Value: value}); err != nil {
			t.Fatalf("seed rating: %v", err)
		}
	}

	svc := NewStoreService(stores, ratings, zerolog.Nop())

	dash, err := svc.Dashboard(context.Background(), 10, ratingsSort())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.Store.ID != store.ID {
		t.Fatalf("unexpected store: %+v", dash.Store)
	}
	if len(dash.Ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(dash.Ratings))
	}
}
