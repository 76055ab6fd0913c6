package transactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a row does not exist or belongs to
// another user; callers cannot tell the two apart.
var ErrNotFound = errors.New("transaction not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Insert(ctx context.Context, t *Transaction) error {
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO transactions (user_id, date, type, category, amount, currency, payment_method, description)
		 VALUES ($1::uuid, $2::date, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		t.UserID, t.Date, t.Type, t.Category, t.Amount, t.Currency, t.PaymentMethod, t.Description,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByUser returns all of a user's transactions, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, user_id::text, date::text, type, category, amount, currency, payment_method, description, created_at
		 FROM transactions
		 WHERE user_id = $1::uuid
		 ORDER BY date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Date, &t.Type, &t.Category,
			&t.Amount, &t.Currency, &t.PaymentMethod, &t.Description, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update replaces every mutable field of a transaction owned by the user.
func (r *Repository) Update(ctx context.Context, t *Transaction) error {
	err := r.Pool.QueryRow(ctx,
		`UPDATE transactions
		 SET date = $1::date, type = $2, category = $3, amount = $4,
		     currency = $5, payment_method = $6, description = $7
		 WHERE id = $8::uuid AND user_id = $9::uuid
		 RETURNING created_at`,
		t.Date, t.Type, t.Category, t.Amount, t.Currency, t.PaymentMethod, t.Description,
		t.ID, t.UserID,
	).Scan(&t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM transactions WHERE id = $1::uuid AND user_id = $2::uuid`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
