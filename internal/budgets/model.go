package budgets

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aelwazan-Hawx/Clarity/internal/domain"
)

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Budget caps spending for one (category, currency, month). The triple
// is unique per user; saving again overwrites the amount.
type Budget struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"user_id"`
	Category  string          `db:"category" json:"category"`
	Currency  string          `db:"currency" json:"currency"`
	Month     string          `db:"month" json:"month"` // YYYY-MM
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

type UpsertRequest struct {
	Category string          `json:"category"`
	Currency string          `json:"currency"`
	Month    string          `json:"month"`
	Amount   decimal.Decimal `json:"amount"`
}

func (r *UpsertRequest) Validate() error {
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		return errors.New("category required")
	}
	if !domain.ValidCurrency(r.Currency) {
		return errors.New("currency must be SAR or EGP")
	}
	if !monthRe.MatchString(r.Month) {
		return errors.New("month must be YYYY-MM")
	}
	if r.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	return nil
}
