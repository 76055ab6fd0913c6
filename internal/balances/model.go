package balances

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aelwazan-Hawx/Clarity/internal/domain"
)

// OpeningBalance is the starting amount of a payment method before any
// tracked transaction. One row per (payment method, currency) per user;
// saving again replaces the amount. It may be negative (an overdrawn
// account is a valid starting point).
type OpeningBalance struct {
	ID            string          `db:"id" json:"id"`
	UserID        string          `db:"user_id" json:"user_id"`
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	Currency      string          `db:"currency" json:"currency"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

type UpsertRequest struct {
	PaymentMethod string          `json:"payment_method"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r *UpsertRequest) Validate() error {
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
	if r.PaymentMethod == "" {
		return errors.New("payment_method required")
	}
	if !domain.ValidCurrency(r.Currency) {
		return errors.New("currency must be SAR or EGP")
	}
	return nil
}
