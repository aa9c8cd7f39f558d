package ports

import (
	"context"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
)

// DashboardStats are the admin dashboard's global counters.
type DashboardStats struct {
	Users   int64 `json:"users"`
	Stores  int64 `json:"stores"`
	Ratings int64 `json:"ratings"`
}

// AdminDashboardInput bundles the independent user and store queries.
type AdminDashboardInput struct {
	Users  ListUsersFilter
	Stores ListStoresFilter
}

// AdminDashboard is the full administrative view.
type AdminDashboard struct {
	Stats  DashboardStats           `json:"stats"`
	Users  []domain.UserWithRating  `json:"users"`
	Stores []domain.StoreWithRating `json:"stores"`
}

// CreateUserInput is an admin-created account. All fields are required and
// any role is allowed.
type CreateUserInput struct {
	Name     string
	Email    string
	Address  string
	Password string
	Role     string
}

// CreateStoreInput registers a store for an existing owner account.
type CreateStoreInput struct {
	Name    string
	Address string
	OwnerID int64
}

// AdminService implements the admin-only operations.
type AdminService interface {
	Dashboard(ctx context.Context, input AdminDashboardInput) (*AdminDashboard, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// CreateStore returns domain.ErrOwnerNotFound when the owner id does not
	// reference a user with the owner role, and domain.ErrStoreExists for a
	// duplicate (name, owner) pair.
	CreateStore(ctx context.Context, input CreateStoreInput) (*domain.Store, error)
}
