package ledger

import "github.com/shopspring/decimal"

// ComputeRunningBalance folds every transaction for one payment method
// in one currency on top of its opening balance: income adds, expense
// subtracts. Addition commutes, so transaction order is irrelevant.
// Internal-transfer categories are NOT excluded here: a transfer still
// moves money out of the account. The result is a reporting figure and
// may go negative.
func ComputeRunningBalance(txns []Transaction, opening decimal.Decimal, key AccountKey) decimal.Decimal {
	balance := opening
	for _, t := range txns {
		if t.PaymentMethod != key.PaymentMethod || t.Currency != key.Currency {
			continue
		}
		switch t.Kind {
		case KindIncome:
			balance = balance.Add(t.Amount)
		case KindExpense:
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}
