package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// User represents a persisted user record. ExchangeRate is the user's
// SAR to EGP conversion rate used by the client for combined views.
type User struct {
	ID           string          `db:"id" json:"id"`
	Email        string          `db:"email" json:"email"`
	PasswordHash string          `db:"password_hash" json:"-"`
	Name         string          `db:"name" json:"name"`
	ExchangeRate decimal.Decimal `db:"exchange_rate" json:"exchange_rate"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// Currencies supported across transactions, payment methods, budgets
// and opening balances. The set is deliberately small but extensible.
var Currencies = map[string]bool{
	"SAR": true,
	"EGP": true,
}

// ValidCurrency reports whether the code is in the supported set.
func ValidCurrency(code string) bool {
	return Currencies[code]
}

// CurrencyCodes returns the supported codes in a stable order.
func CurrencyCodes() []string {
	codes := make([]string, 0, len(Currencies))
	for code := range Currencies {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
