package ports

import (
	"context"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
)

// ListUsersFilter carries the admin dashboard's user query parameters.
// Empty filter fields are skipped; SortBy/Order outside the allowlist fall
// back to name ascending.
type ListUsersFilter struct {
	Name    string // substring match on name
	Email   string // substring match on email
	Address string // substring match on address
	Role    string // exact match when non-empty
	SortBy  string // name | email | role | address
	Order   string // asc | desc
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create inserts a user and returns it with its assigned id.
	// A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// List returns users matching the filter, each with the average rating
	// of the store they own (if any).
	List(ctx context.Context, filter ListUsersFilter) ([]domain.UserWithRating, error)
	Count(ctx context.Context) (int64, error)
}
