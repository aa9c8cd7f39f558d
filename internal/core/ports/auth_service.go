package ports

import (
	"context"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
)

// SignupInput carries a self-registration request. Role may be "user" or
// "owner"; empty defaults to "user". Admin accounts are never self-created.
type SignupInput struct {
	Name     string
	Email    string
	Address  string
	Password string
	Role     string
}

// AuthService implements signup, login and password updates.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login returns a session token and the authenticated user, or
	// domain.ErrInvalidCredentials. Repeated failures for the same email
	// yield domain.ErrTooManyAttempts for the lockout window.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// UpdatePassword verifies the current password before storing the new
	// one. The new password must satisfy the password policy.
	UpdatePassword(ctx context.Context, userID int64, current, next string) error
}

// LoginGuard throttles failed login attempts per email.
type LoginGuard interface {
	// Blocked reports whether the email has exhausted its failure budget.
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
