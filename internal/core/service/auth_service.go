package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/token"
)

// AuthService implements signup, login and password updates.
type AuthService struct {
	users  ports.UserRepository
	issuer *token.Issuer
	guard  ports.LoginGuard // nil disables login throttling
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, issuer *token.Issuer, guard ports.LoginGuard, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, issuer: issuer, guard: guard, logger: logger}
}

// Signup registers a new account. Policy checks run before any hashing so a
// rejected request never pays the bcrypt cost. There is no auto-login; the
// client logs in separately.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	role := domain.RoleUser
	if input.Role != "" {
		parsed, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, domain.Validationf(err.Error())
		}
		if parsed == domain.RoleAdmin {
			return nil, domain.Validationf("admin accounts cannot self-register")
		}
		role = parsed
	}

	if err := validateAccountFields(input.Name, input.Address, input.Password); err != nil {
		return nil, err
	}

	return s.createUser(ctx, input.Name, input.Email, input.Address, input.Password, role)
}

// Login authenticates by email and password and mints a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.guard != nil {
		blocked, err := s.guard.Blocked(ctx, email)
		if err != nil {
			// Redis being down must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login guard unavailable")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.guard != nil {
		if err := s.guard.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login guard reset failed")
		}
	}

	tkn, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("role", user.Role.String()).Msg("login")
	return tkn, user, nil
}

// UpdatePassword verifies the caller's current password before storing a new
// hash. Outstanding session tokens stay valid; only the credential changes.
func (s *AuthService) UpdatePassword(ctx context.Context, userID int64, current, next string) error {
	if err := domain.ValidatePassword(next); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.Validationf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", userID).Msg("password updated")
	return nil
}

// createUser hashes and persists an account; shared with the admin service.
func (s *AuthService) createUser(ctx context.Context, name, email, address, password string, role domain.Role) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Address:      address,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", role.String()).Msg("account created")
	return created, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.guard == nil {
		return
	}
	if err := s.guard.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login guard record failed")
	}
}

// validateAccountFields applies the shared account policies: name 2-60,
// address at most 400, password per the password policy.
func validateAccountFields(name, address, password string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}
	if err := domain.ValidateAddress(address); err != nil {
		return err
	}
	return domain.ValidatePassword(password)
}
