package paymentmethods

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("payment method not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Insert(ctx context.Context, pm *PaymentMethod) error {
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO payment_methods (user_id, name, currency)
		 VALUES ($1::uuid, $2, $3)
		 RETURNING id, created_at`,
		pm.UserID, pm.Name, pm.Currency,
	).Scan(&pm.ID, &pm.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]PaymentMethod, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, user_id::text, name, currency, created_at
		 FROM payment_methods
		 WHERE user_id = $1::uuid
		 ORDER BY currency, name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()

	out := make([]PaymentMethod, 0)
	for rows.Next() {
		var pm PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.UserID, &pm.Name, &pm.Currency, &pm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		out = append(out, pm)
	}
	return out, rows.Err()
}

func (r *Repository) Update(ctx context.Context, pm *PaymentMethod) error {
	err := r.Pool.QueryRow(ctx,
		`UPDATE payment_methods
		 SET name = $1
		 WHERE id = $2::uuid AND user_id = $3::uuid
		 RETURNING currency, created_at`,
		pm.Name, pm.ID, pm.UserID,
	).Scan(&pm.Currency, &pm.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM payment_methods WHERE id = $1::uuid AND user_id = $2::uuid`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
