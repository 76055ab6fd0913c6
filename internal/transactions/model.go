package transactions

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aelwazan-Hawx/Clarity/internal/domain"
	"github.com/aelwazan-Hawx/Clarity/internal/ledger"
)

// Transaction is a persisted ledger row.
type Transaction struct {
	ID            string          `db:"id" json:"id"`
	UserID        string          `db:"user_id" json:"user_id"`
	Date          string          `db:"date" json:"date"` // YYYY-MM-DD
	Type          string          `db:"type" json:"type"` // income | expense
	Category      string          `db:"category" json:"category"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Currency      string          `db:"currency" json:"currency"`
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	Description   string          `db:"description" json:"description"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// ToLedger converts the row into the aggregation engine's shape.
func (t Transaction) ToLedger() ledger.Transaction {
	return ledger.Transaction{
		ID:            t.ID,
		Date:          t.Date,
		Kind:          ledger.Kind(t.Type),
		Category:      t.Category,
		Amount:        t.Amount,
		Currency:      t.Currency,
		PaymentMethod: t.PaymentMethod,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
}

// ToLedger converts a list of rows into a ledger snapshot slice.
func ToLedger(rows []Transaction) []ledger.Transaction {
	out := make([]ledger.Transaction, len(rows))
	for i, r := range rows {
		out[i] = r.ToLedger()
	}
	return out
}

// WriteRequest is the body for creating or replacing a transaction.
type WriteRequest struct {
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	Description   string          `json:"description"`
}

// Validate enforces the input shape before anything reaches the
// aggregation engine: ISO date, enumerated type and currency, strictly
// positive amount, non-empty category and payment method.
func (r *WriteRequest) Validate() error {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if r.Type != "income" && r.Type != "expense" {
		return errors.New("type must be income or expense")
	}
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		return errors.New("category required")
	}
	if !r.Amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	if !domain.ValidCurrency(r.Currency) {
		return errors.New("currency must be SAR or EGP")
	}
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
	if r.PaymentMethod == "" {
		return errors.New("payment_method required")
	}
	return nil
}
