package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

// userSortColumns is the allowlist for admin user-list sorting.
var userSortColumns = map[string]string{
	"name":    "u.name",
	"email":   "u.email",
	"role":    "u.role",
	"address": "u.address",
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password, address, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Name, user.Email, user.PasswordHash, user.Address, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user id: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, address, role, created_at
		   FROM users WHERE email = ?`, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, address, role, created_at
		   FROM users WHERE id = ?`, id))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List builds the admin user query dynamically: optional substring filters,
// an exact role filter, and allowlisted sorting. Each row carries the
// average rating of the store the user owns, NULL for everyone else.
func (r *UserRepository) List(ctx context.Context, filter ports.ListUsersFilter) ([]domain.UserWithRating, error) {
	query := `SELECT u.id, u.name, u.email, u.address, u.role, u.created_at,
	                 ROUND(AVG(rt.rating_value), 1) AS avg_rating
	            FROM users u
	            LEFT JOIN stores s ON s.owner_id = u.id
	            LEFT JOIN ratings rt ON rt.store_id = s.id
	           WHERE 1=1`
	var args []any

	if filter.Name != "" {
		query += " AND u.name LIKE ?"
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.Email != "" {
		query += " AND u.email LIKE ?"
		args = append(args, "%"+filter.Email+"%")
	}
	if filter.Address != "" {
		query += " AND u.address LIKE ?"
		args = append(args, "%"+filter.Address+"%")
	}
	if filter.Role != "" {
		query += " AND u.role = ?"
		args = append(args, filter.Role)
	}

	query += " GROUP BY u.id ORDER BY " + orderClause(userSortColumns, filter.SortBy, "u.name", filter.Order)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []domain.UserWithRating
	for rows.Next() {
		var (
			u   domain.UserWithRating
			avg sql.NullFloat64
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Address, &u.Role, &u.CreatedAt, &avg); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.AvgRating = nullFloatPtr(avg)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *UserRepository) scanOne(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Address, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
