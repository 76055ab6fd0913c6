package budgets

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/aelwazan-Hawx/Clarity/internal/ledger"
)

var ErrNotFound = errors.New("budget not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// Upsert creates the budget or, when the (category, currency, month)
// key already exists for the user, overwrites its amount.
func (r *Repository) Upsert(ctx context.Context, b *Budget) error {
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO budgets (user_id, category, currency, month, amount)
		 VALUES ($1::uuid, $2, $3, $4, $5)
		 ON CONFLICT (user_id, category, currency, month)
		 DO UPDATE SET amount = EXCLUDED.amount
		 RETURNING id, created_at`,
		b.UserID, b.Category, b.Currency, b.Month, b.Amount,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Budget, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, user_id::text, category, currency, month, amount, created_at
		 FROM budgets
		 WHERE user_id = $1::uuid
		 ORDER BY month DESC, category`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	out := make([]Budget, 0)
	for rows.Next() {
		var b Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Currency, &b.Month, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// MapByUser returns the user's budgets keyed the way the ledger engine
// expects them.
func (r *Repository) MapByUser(ctx context.Context, userID string) (map[ledger.BudgetKey]decimal.Decimal, error) {
	rows, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[ledger.BudgetKey]decimal.Decimal, len(rows))
	for _, b := range rows {
		out[ledger.BudgetKey{Category: b.Category, Currency: b.Currency, Month: b.Month}] = b.Amount
	}
	return out, nil
}

func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM budgets WHERE id = $1::uuid AND user_id = $2::uuid`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
