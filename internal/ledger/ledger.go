// Package ledger derives totals, balances and budget-utilization figures
// from an in-memory snapshot of a user's transactions. Everything in this
// package is pure: no I/O, no retained state, deterministic for a given
// snapshot. Input validation happens at the API boundary; these functions
// assume well-formed rows and never fail.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind distinguishes money coming in from money going out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Transaction is a single ledger row. Amount is always positive;
// direction comes from Kind. Date is an ISO calendar day (YYYY-MM-DD),
// which makes date comparisons plain string comparisons.
type Transaction struct {
	ID            string
	Date          string
	Kind          Kind
	Category      string
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod string
	Description   string
	CreatedAt     time.Time
}

// BudgetKey identifies a budget uniquely within one user's ledger.
// A struct key rather than a concatenated string, so category names
// containing a delimiter cannot collide.
type BudgetKey struct {
	Category string
	Currency string
	Month    string // YYYY-MM
}

// AccountKey identifies a payment method in one currency.
type AccountKey struct {
	PaymentMethod string
	Currency      string
}

// Snapshot is a point-in-time copy of one user's ledger rows.
// Excluded holds the names of internal-transfer categories that must
// not count toward expense totals.
type Snapshot struct {
	Transactions    []Transaction
	Budgets         map[BudgetKey]decimal.Decimal
	OpeningBalances map[AccountKey]decimal.Decimal
	Excluded        map[string]bool
}

// Totals reports income, expense and their difference for one currency.
func (s Snapshot) Totals(currency string) Totals {
	return ComputeTotals(s.Transactions, currency, s.Excluded)
}

// Utilization reports budget usage for one (category, currency, month).
func (s Snapshot) Utilization(key BudgetKey) Utilization {
	return ComputeUtilization(s.Transactions, s.Budgets, key)
}

// RunningBalance reports the current balance of one payment method,
// starting from its opening balance (zero when none is set).
func (s Snapshot) RunningBalance(key AccountKey) decimal.Decimal {
	return ComputeRunningBalance(s.Transactions, s.OpeningBalances[key], key)
}
