package balances

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/aelwazan-Hawx/Clarity/internal/ledger"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// Upsert creates the opening balance or replaces the amount when the
// (payment method, currency) key already exists for the user.
func (r *Repository) Upsert(ctx context.Context, ob *OpeningBalance) error {
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO opening_balances (user_id, payment_method, currency, amount)
		 VALUES ($1::uuid, $2, $3, $4)
		 ON CONFLICT (user_id, payment_method, currency)
		 DO UPDATE SET amount = EXCLUDED.amount
		 RETURNING id, created_at`,
		ob.UserID, ob.PaymentMethod, ob.Currency, ob.Amount,
	).Scan(&ob.ID, &ob.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert opening balance: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]OpeningBalance, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, user_id::text, payment_method, currency, amount, created_at
		 FROM opening_balances
		 WHERE user_id = $1::uuid`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list opening balances: %w", err)
	}
	defer rows.Close()

	out := make([]OpeningBalance, 0)
	for rows.Next() {
		var ob OpeningBalance
		if err := rows.Scan(&ob.ID, &ob.UserID, &ob.PaymentMethod, &ob.Currency, &ob.Amount, &ob.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan opening balance: %w", err)
		}
		out = append(out, ob)
	}
	return out, rows.Err()
}

// MapByUser returns the user's opening balances keyed the way the
// ledger engine expects them.
func (r *Repository) MapByUser(ctx context.Context, userID string) (map[ledger.AccountKey]decimal.Decimal, error) {
	rows, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[ledger.AccountKey]decimal.Decimal, len(rows))
	for _, ob := range rows {
		out[ledger.AccountKey{PaymentMethod: ob.PaymentMethod, Currency: ob.Currency}] = ob.Amount
	}
	return out, nil
}
