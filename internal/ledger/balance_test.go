package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func accountTx(kind Kind, amount, method, currency string) Transaction {
	t := tx(kind, amount, currency, "Markets", "2025-10-10")
	t.PaymentMethod = method
	return t
}

func TestComputeRunningBalance(t *testing.T) {
	key := AccountKey{PaymentMethod: "Sabb", Currency: "SAR"}

	t.Run("starts from the opening balance", func(t *testing.T) {
		got := ComputeRunningBalance(nil, decimal.NewFromInt(2500), key)
		require.Equal(t, "2500", got.String())
	})

	t.Run("unset opening balance means zero", func(t *testing.T) {
		s := Snapshot{Transactions: []Transaction{accountTx(KindIncome, "100", "Sabb", "SAR")}}
		require.Equal(t, "100", s.RunningBalance(key).String())
	})

	t.Run("income adds, expense subtracts", func(t *testing.T) {
		txns := []Transaction{
			accountTx(KindIncome, "15000", "Sabb", "SAR"),
			accountTx(KindExpense, "500", "Sabb", "SAR"),
			accountTx(KindExpense, "999", "Alrajhi", "SAR"), // other account
			accountTx(KindExpense, "999", "Sabb", "EGP"),    // other currency
		}
		got := ComputeRunningBalance(txns, decimal.NewFromInt(1000), key)
		require.Equal(t, "15500", got.String())
	})

	t.Run("balances may go negative", func(t *testing.T) {
		txns := []Transaction{accountTx(KindExpense, "300", "Sabb", "SAR")}
		got := ComputeRunningBalance(txns, decimal.NewFromInt(100), key)
		require.Equal(t, "-200", got.String())
	})
}

// Permuting the transaction list never changes the running balance.
func TestRunningBalanceOrderIndependent(t *testing.T) {
	key := AccountKey{PaymentMethod: "CIB_Current", Currency: "EGP"}

	rapid.Check(t, func(rt *rapid.T) {
		kinds := []Kind{KindIncome, KindExpense}
		var txns []Transaction
		for range rapid.IntRange(0, 12).Draw(rt, "n") {
			txns = append(txns, Transaction{
				Kind:          kinds[rapid.IntRange(0, 1).Draw(rt, "kind")],
				Amount:        decimal.NewFromInt(rapid.Int64Range(1, 10000).Draw(rt, "amount")),
				Currency:      "EGP",
				PaymentMethod: "CIB_Current",
				Category:      "Markets",
				Date:          "2025-10-01",
			})
		}
		opening := decimal.NewFromInt(rapid.Int64Range(-1000, 1000).Draw(rt, "opening"))
		want := ComputeRunningBalance(txns, opening, key)

		perm := rapid.Permutation(txns).Draw(rt, "perm")
		got := ComputeRunningBalance(perm, opening, key)
		require.True(rt, want.Equal(got), "want %s, got %s", want, got)
	})
}
