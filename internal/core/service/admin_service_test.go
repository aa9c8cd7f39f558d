package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

func newAdminFixture() (*AdminService, *stubUserRepo, *stubStoreRepo, *stubRatingRepo) {
	users := newStubUserRepo()
	stores := newStubStoreRepo()
	ratings := newStubRatingRepo()
	return NewAdminService(users, stores, ratings, zerolog.Nop()), users, stores, ratings
}

func createUserInput(role string) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:     "Bob The Owner",
		Email:    "bob@example.com",
		Address:  "3 Side Street",
		Password: "Abcd123!",
		Role:     role,
	}
}

func TestAdminService_CreateUser(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	user, err := svc.CreateUser(context.Background(), createUserInput("admin"))
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", user.Role)
	}
}

func TestAdminService_CreateUser_Validation(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	missing := createUserInput("user")
	missing.Address = ""
	if _, err := svc.CreateUser(context.Background(), missing); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing field, got %v", err)
	}

	badRole := createUserInput("manager")
	if _, err := svc.CreateUser(context.Background(), badRole); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}

	weak := createUserInput("user")
	weak.Password = "abcd1234"
	if _, err := svc.CreateUser(context.Background(), weak); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for weak password, got %v", err)
	}
}

func TestAdminService_CreateStore(t *testing.T) {
	svc, users, _, _ := newAdminFixture()

	owner, err := users.Create(context.Background(), &domain.User{
		Name: "Owner", Email: "owner@example.com", Role: domain.RoleOwner,
	})
	if err != nil {
		t.Fatalf("seed owner: %v", err)
	}

	store, err := svc.CreateStore(context.Background(), ports.CreateStoreInput{
		Name: "Corner Shop", Address: "1 Main Street", OwnerID: owner.ID,
	})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	if store.ID == 0 {
		t.Fatal("expected assigned store id")
	}

	// Same (name, owner) pair conflicts.
	if _, err := svc.CreateStore(context.Background(), ports.CreateStoreInput{
		Name: "Corner Shop", Address: "1 Main Street", OwnerID: owner.ID,
	}); err != domain.ErrStoreExists {
		t.Fatalf("expected ErrStoreExists, got %v", err)
	}
}

func TestAdminService_CreateStore_OwnerChecks(t *testing.T) {
	svc, users, _, _ := newAdminFixture()

	plain, err := users.Create(context.Background(), &domain.User{
		Name: "Plain", Email: "plain@example.com", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// Unknown owner id.
	if _, err := svc.CreateStore(context.Background(), ports.CreateStoreInput{
		Name: "Shop", Address: "Addr", OwnerID: 999,
	}); err != domain.ErrOwnerNotFound {
		t.Fatalf("expected ErrOwnerNotFound for unknown id, got %v", err)
	}

	// Existing user without the owner role.
	if _, err := svc.CreateStore(context.Background(), ports.CreateStoreInput{
		Name: "Shop", Address: "Addr", OwnerID: plain.ID,
	}); err != domain.ErrOwnerNotFound {
		t.Fatalf("expected ErrOwnerNotFound for non-owner, got %v", err)
	}
}

func TestAdminService_Dashboard(t *testing.T) {
	svc, users, stores, ratings := newAdminFixture()

	owner, _ := users.Create(context.Background(), &domain.User{
		Name: "Owner", Email: "owner@example.com", Role: domain.RoleOwner, CreatedAt: time.Now().UTC(),
	})
	_, _ = users.Create(context.Background(), &domain.User{
		Name: "Rater", Email: "rater@example.com", Role: domain.RoleUser, CreatedAt: time.Now().UTC(),
	})
	store, _ := stores.Create(context.Background(), &domain.Store{Name: "Shop", OwnerID: owner.ID})
	_, _ = ratings.Upsert(context.Background(), &domain.Rating{StoreID: store.ID, UserID: 2, Value: 4})

	dash, err := svc.Dashboard(context.Background(), ports.AdminDashboardInput{})
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.Stats.Users != 2 || dash.Stats.Stores != 1 || dash.Stats.Ratings != 1 {
		t.Fatalf("unexpected stats: %+v", dash.Stats)
	}
	if len(dash.Users) != 2 || len(dash.Stores) != 1 {
		t.Fatalf("unexpected listing sizes: users=%d stores=%d", len(dash.Users), len(dash.Stores))
	}
}
