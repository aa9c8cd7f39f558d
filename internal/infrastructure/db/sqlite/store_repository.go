package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
	"github.com/Aqil0709/store-rating-fullstack/internal/core/ports"
)

// storeSortColumns is the allowlist for store-list sorting. avg_rating and
// owner_email refer to the select aliases.
var storeSortColumns = map[string]string{
	"name":        "s.name",
	"address":     "s.address",
	"created_at":  "s.created_at",
	"avg_rating":  "avg_rating",
	"owner_email": "owner_email",
}

const storeSelect = `SELECT s.id, s.name, s.address, s.owner_id, s.created_at,
	                 u.email AS owner_email,
	                 ROUND(AVG(rt.rating_value), 1) AS avg_rating
	            FROM stores s
	            LEFT JOIN users u ON u.id = s.owner_id
	            LEFT JOIN ratings rt ON rt.store_id = s.id`

type StoreRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO stores (name, address, owner_id, created_at) VALUES (?, ?, ?, ?)`,
		store.Name, store.Address, store.OwnerID, store.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrStoreExists
		}
		return nil, fmt.Errorf("insert store: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert store id: %w", err)
	}

	created := *store
	created.ID = id
	return &created, nil
}

// List returns stores with owner email and rounded average rating, filtered
// by optional substrings and ordered by an allowlisted column.
func (r *StoreRepository) List(ctx context.Context, filter ports.ListStoresFilter) ([]domain.StoreWithRating, error) {
	query := storeSelect + ` WHERE 1=1`
	var args []any

	if filter.Name != "" {
		query += " AND s.name LIKE ?"
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.Address != "" {
		query += " AND s.address LIKE ?"
		args = append(args, "%"+filter.Address+"%")
	}
	if filter.OwnerEmail != "" {
		query += " AND u.email LIKE ?"
		args = append(args, "%"+filter.OwnerEmail+"%")
	}

	query += " GROUP BY s.id ORDER BY " + orderClause(storeSortColumns, filter.SortBy, "s.name", filter.Order)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var out []domain.StoreWithRating
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *StoreRepository) FindByOwner(ctx context.Context, ownerID int64) (*domain.StoreWithRating, error) {
	rows, err := r.db.QueryContext(ctx,
		storeSelect+` WHERE s.owner_id = ? GROUP BY s.id LIMIT 1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find store by owner: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrStoreNotFound
	}
	return scanStore(rows)
}

func (r *StoreRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM stores WHERE id = ?)`, id).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("store exists: %w", err)
	}
	return exists, nil
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stores`).Scan(&n)
	return n, err
}

func scanStore(rows *sql.Rows) (*domain.StoreWithRating, error) {
	var (
		s          domain.StoreWithRating
		ownerEmail sql.NullString
		avg        sql.NullFloat64
	)
	if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.OwnerID, &s.CreatedAt, &ownerEmail, &avg); err != nil {
		return nil, fmt.Errorf("scan store: %w", err)
	}
	s.OwnerEmail = ownerEmail.String
	s.AvgRating = nullFloatPtr(avg)
	return &s, nil
}
