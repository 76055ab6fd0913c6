package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Severity classifies a utilization percentage for display.
type Severity string

const (
	SeverityNormal  Severity = "normal"
	SeverityWarning Severity = "warning" // near limit
	SeverityOver    Severity = "over"
)

var hundred = decimal.NewFromInt(100)

// Utilization reports how much of a monthly category budget is used.
// Remaining may go negative to signal overspend; Percentage is clamped
// to 100 so a progress bar never renders past full.
type Utilization struct {
	Budget     decimal.Decimal `json:"budget"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ComputeUtilization sums the month's expenses for the key's category
// and currency and compares them against the budgeted amount. A missing
// budget key counts as zero, and a zero budget yields zero percent
// rather than a division error.
func ComputeUtilization(txns []Transaction, budgets map[BudgetKey]decimal.Decimal, key BudgetKey) Utilization {
	spent := decimal.Zero
	for _, t := range txns {
		if t.Kind != KindExpense || t.Category != key.Category || t.Currency != key.Currency {
			continue
		}
		if !strings.HasPrefix(t.Date, key.Month) {
			continue
		}
		spent = spent.Add(t.Amount)
	}

	budget := budgets[key]

	pct := decimal.Zero
	if budget.IsPositive() {
		pct = spent.Div(budget).Mul(hundred)
		if pct.GreaterThan(hundred) {
			pct = hundred
		}
	}

	return Utilization{
		Budget:     budget,
		Spent:      spent,
		Remaining:  budget.Sub(spent),
		Percentage: pct,
	}
}

// Severity returns the presentation band for the utilization.
// Lower bounds are inclusive: 80.0 is already a warning, 100.0 is over.
func (u Utilization) Severity() Severity {
	switch {
	case u.Percentage.GreaterThanOrEqual(hundred):
		return SeverityOver
	case u.Percentage.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return SeverityWarning
	default:
		return SeverityNormal
	}
}
