package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

// ratingSortColumns is the allowlist for the owner dashboard's rating list.
// created_at is the rater's account age, submitted_at the rating's own
// timestamp.
var ratingSortColumns = map[string]string{
	"user_name":    "u.name",
	"email":        "u.email",
	"rating_value": "r.rating_value",
	"submitted_at": "r.created_at",
	"created_at":   "u.created_at",
}

type RatingRepository struct {
	db *sql.DB
}

func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert inserts the rating or overwrites the value of an existing one for
// the same (store, user) pair. The original submission timestamp is kept on
// overwrite.
func (r *RatingRepository) Upsert(ctx context.Context, rating *domain.Rating) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM ratings WHERE store_id = ? AND user_id = ?)`,
		rating.StoreID, rating.UserID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("rating exists: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO ratings (store_id, user_id, rating_value, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (store_id, user_id) DO UPDATE SET rating_value = excluded.rating_value`,
		rating.StoreID, rating.UserID, rating.Value, rating.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("upsert rating: %w", err)
	}
	return !exists, nil
}

func (r *RatingRepository) ByUser(ctx context.Context, userID int64) (map[int64]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT store_id, rating_value FROM ratings WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("ratings by user: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]int)
	for rows.Next() {
		var (
			storeID int64
			value   int
		)
		if err := rows.Scan(&storeID, &value); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		out[storeID] = value
	}
	return out, rows.Err()
}

func (r *RatingRepository) ForStore(ctx context.Context, storeID int64, sort ports.RatingsSort) ([]domain.RatingDetail, error) {
	query := `SELECT u.name, u.email, u.created_at, r.rating_value, r.created_at
	            FROM ratings r
	            JOIN users u ON u.id = r.user_id
	           WHERE r.store_id = ?
	           ORDER BY ` + orderClause(ratingSortColumns, sort.Field, "u.name", sort.Order)

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("ratings for store: %w", err)
	}
	defer rows.Close()

	var out []domain.RatingDetail
	for rows.Next() {
		var d domain.RatingDetail
		if err := rows.Scan(&d.UserName, &d.Email, &d.CreatedAt, &d.Value, &d.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan rating detail: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&n)
	return n, err
}
