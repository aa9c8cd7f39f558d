package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

// AdminService implements the admin-only operations: the global dashboard
// and user/store creation.
type AdminService struct {
	users   ports.UserRepository
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	logger  zerolog.Logger
}

func NewAdminService(users ports.UserRepository, stores ports.StoreRepository, ratings ports.RatingRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, stores: stores, ratings: ratings, logger: logger}
}

// Dashboard aggregates global counters with the filtered, sorted user and
// store listings.
func (s *AdminService) Dashboard(ctx context.Context, input ports.AdminDashboardInput) (*ports.AdminDashboard, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalStores, err := s.stores.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRatings, err := s.ratings.Count(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, input.Users)
	if err != nil {
		return nil, err
	}
	stores, err := s.stores.List(ctx, input.Stores)
	if err != nil {
		return nil, err
	}

	return &ports.AdminDashboard{
		Stats: ports.DashboardStats{
			Users:   totalUsers,
			Stores:  totalStores,
			Ratings: totalRatings,
		},
		Users:  users,
		Stores: stores,
	}, nil
}

// CreateUser registers an account on behalf of an admin. Unlike signup, any
// role is allowed, but the same name/address/password policies apply.
func (s *AdminService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Address == "" || input.Role == "" {
		return nil, domain.Validationf("all fields are required")
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, domain.Validationf(err.Error())
	}
	if err := validateAccountFields(input.Name, input.Address, input.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Address:      input.Address,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", role.String()).Msg("user created by admin")
	return created, nil
}

// CreateStore registers a store for an existing owner account. The owner
// must exist and carry the owner role; one owner cannot hold two stores with
// the same name.
func (s *AdminService) CreateStore(ctx context.Context, input ports.CreateStoreInput) (*domain.Store, error) {
	if input.Name == "" || input.Address == "" || input.OwnerID == 0 {
		return nil, domain.Validationf("name, address and owner_id are required")
	}

	owner, err := s.users.FindByID(ctx, input.OwnerID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, err
	}
	if owner.Role != domain.RoleOwner {
		return nil, domain.ErrOwnerNotFound
	}

	created, err := s.stores.Create(ctx, &domain.Store{
		Name:      input.Name,
		Address:   input.Address,
		OwnerID:   input.OwnerID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("store_id", created.ID).Int64("owner_id", input.OwnerID).Msg("store created")
	return created, nil
}
