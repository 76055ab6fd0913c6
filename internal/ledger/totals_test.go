package ledger

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func tx(kind Kind, amount, currency, category, date string) Transaction {
	return Transaction{
		Kind:     kind,
		Amount:   decimal.RequireFromString(amount),
		Currency: currency,
		Category: category,
		Date:     date,
	}
}

func TestComputeTotals(t *testing.T) {
	t.Run("empty snapshot yields zero totals", func(t *testing.T) {
		got := ComputeTotals(nil, "SAR", nil)
		require.True(t, got.Income.IsZero())
		require.True(t, got.Expense.IsZero())
		require.True(t, got.Balance.IsZero())
	})

	t.Run("dashboard scenario", func(t *testing.T) {
		txns := []Transaction{
			tx(KindIncome, "15000", "SAR", "Salaries & Wages", "2025-10-20"),
			tx(KindExpense, "500", "SAR", "Markets", "2025-10-20"),
		}
		got := ComputeTotals(txns, "SAR", nil)
		require.Equal(t, "15000", got.Income.String())
		require.Equal(t, "500", got.Expense.String())
		require.Equal(t, "14500", got.Balance.String())
	})

	t.Run("single expense drives balance negative", func(t *testing.T) {
		txns := []Transaction{tx(KindExpense, "42.50", "EGP", "Restaurants", "2025-10-19")}
		got := ComputeTotals(txns, "EGP", nil)
		require.Equal(t, "42.5", got.Expense.String())
		require.Equal(t, "-42.5", got.Balance.String())
	})

	t.Run("excluded categories do not count as spending", func(t *testing.T) {
		excluded := map[string]bool{"Trans from ACC": true, "EGY Trans": true}
		txns := []Transaction{
			tx(KindExpense, "1000", "SAR", "Trans from ACC", "2025-10-01"),
			tx(KindExpense, "200", "SAR", "Markets", "2025-10-02"),
			tx(KindExpense, "300", "EGP", "EGY Trans", "2025-10-03"),
		}
		got := ComputeTotals(txns, "SAR", excluded)
		require.Equal(t, "200", got.Expense.String())
	})

	t.Run("other currencies never leak into totals", func(t *testing.T) {
		txns := []Transaction{
			tx(KindIncome, "100", "SAR", "Other Income", "2025-10-01"),
			tx(KindIncome, "9999", "EGP", "Other Income", "2025-10-01"),
			tx(KindExpense, "50", "EGP", "Markets", "2025-10-02"),
		}
		got := ComputeTotals(txns, "SAR", nil)
		require.Equal(t, "100", got.Income.String())
		require.True(t, got.Expense.IsZero())
	})
}

// Adding transactions of a different currency never changes a
// currency's totals.
func TestComputeTotalsCurrencyIsolation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kinds := []Kind{KindIncome, KindExpense}
		gen := func(currency string) Transaction {
			return Transaction{
				Kind:     kinds[rapid.IntRange(0, 1).Draw(rt, "kind")],
				Amount:   decimal.NewFromInt(rapid.Int64Range(1, 100000).Draw(rt, "amount")),
				Currency: currency,
				Category: "cat" + strconv.Itoa(rapid.IntRange(0, 4).Draw(rt, "cat")),
				Date:     "2025-10-15",
			}
		}

		var sar []Transaction
		for range rapid.IntRange(0, 10).Draw(rt, "nSAR") {
			sar = append(sar, gen("SAR"))
		}
		before := ComputeTotals(sar, "SAR", nil)

		mixed := append([]Transaction{}, sar...)
		for range rapid.IntRange(0, 10).Draw(rt, "nEGP") {
			mixed = append(mixed, gen("EGP"))
		}
		after := ComputeTotals(mixed, "SAR", nil)

		require.True(rt, before.Income.Equal(after.Income))
		require.True(rt, before.Expense.Equal(after.Expense))
		require.True(rt, before.Balance.Equal(after.Balance))
	})
}

func TestSnapshotTotalsUsesExclusionSet(t *testing.T) {
	s := Snapshot{
		Transactions: []Transaction{
			tx(KindExpense, "100", "SAR", "Trans from ACC", "2025-10-10"),
			tx(KindExpense, "60", "SAR", "Markets", "2025-10-10"),
		},
		Excluded: map[string]bool{"Trans from ACC": true},
	}
	require.Equal(t, "60", s.Totals("SAR").Expense.String())
}
