package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("category not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Insert(ctx context.Context, cat *Category) error {
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO categories (user_id, name, type, excluded_from_totals)
		 VALUES ($1::uuid, $2, $3, $4)
		 RETURNING id, created_at`,
		cat.UserID, cat.Name, cat.Type, cat.ExcludedFromTotals,
	).Scan(&cat.ID, &cat.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Category, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, user_id::text, name, type, excluded_from_totals, created_at
		 FROM categories
		 WHERE user_id = $1::uuid
		 ORDER BY type, name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.ExcludedFromTotals, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ExcludedSet returns the names of the user's internal-transfer
// categories, in the shape the ledger engine consumes.
func (r *Repository) ExcludedSet(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT name FROM categories
		 WHERE user_id = $1::uuid AND excluded_from_totals`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list excluded categories: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan excluded category: %w", err)
		}
		out[name] = true
	}
	return out, rows.Err()
}

func (r *Repository) Update(ctx context.Context, cat *Category) error {
	err := r.Pool.QueryRow(ctx,
		`UPDATE categories
		 SET name = $1, excluded_from_totals = $2
		 WHERE id = $3::uuid AND user_id = $4::uuid
		 RETURNING type, created_at`,
		cat.Name, cat.ExcludedFromTotals, cat.ID, cat.UserID,
	).Scan(&cat.Type, &cat.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Get fetches one category owned by the user.
func (r *Repository) Get(ctx context.Context, userID, id string) (Category, error) {
	var c Category
	err := r.Pool.QueryRow(ctx,
		`SELECT id, user_id::text, name, type, excluded_from_totals, created_at
		 FROM categories
		 WHERE id = $1::uuid AND user_id = $2::uuid`,
		id, userID,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.ExcludedFromTotals, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM categories WHERE id = $1::uuid AND user_id = $2::uuid`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
