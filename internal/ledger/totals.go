package ledger

import "github.com/shopspring/decimal"

// Totals is the income/expense/balance triple for a single currency.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// ComputeTotals sums a currency's transactions. Expenses whose category
// is in the excluded set (internal transfers between the user's own
// accounts) do not count as real spending. An empty input yields zero
// totals, never an error.
func ComputeTotals(txns []Transaction, currency string, excluded map[string]bool) Totals {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range txns {
		if t.Currency != currency {
			continue
		}
		switch t.Kind {
		case KindIncome:
			income = income.Add(t.Amount)
		case KindExpense:
			if excluded[t.Category] {
				continue
			}
			expense = expense.Add(t.Amount)
		}
	}
	return Totals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
