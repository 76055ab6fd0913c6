package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func marketsOctober() BudgetKey {
	return BudgetKey{Category: "Markets", Currency: "SAR", Month: "2025-10"}
}

func TestComputeUtilization(t *testing.T) {
	key := marketsOctober()
	budgets := map[BudgetKey]decimal.Decimal{key: decimal.NewFromInt(1000)}

	t.Run("half spent", func(t *testing.T) {
		txns := []Transaction{tx(KindExpense, "500", "SAR", "Markets", "2025-10-12")}
		got := ComputeUtilization(txns, budgets, key)
		require.Equal(t, "1000", got.Budget.String())
		require.Equal(t, "500", got.Spent.String())
		require.Equal(t, "500", got.Remaining.String())
		require.Equal(t, "50", got.Percentage.String())
		require.Equal(t, SeverityNormal, got.Severity())
	})

	t.Run("over budget clamps percentage but not remaining", func(t *testing.T) {
		txns := []Transaction{tx(KindExpense, "1200", "SAR", "Markets", "2025-10-25")}
		got := ComputeUtilization(txns, budgets, key)
		require.Equal(t, "100", got.Percentage.String())
		require.Equal(t, "-200", got.Remaining.String())
		require.Equal(t, SeverityOver, got.Severity())
	})

	t.Run("clamp scenario budget 100 spent 250", func(t *testing.T) {
		small := BudgetKey{Category: "Markets", Currency: "SAR", Month: "2025-10"}
		b := map[BudgetKey]decimal.Decimal{small: decimal.NewFromInt(100)}
		txns := []Transaction{tx(KindExpense, "250", "SAR", "Markets", "2025-10-05")}
		got := ComputeUtilization(txns, b, small)
		require.Equal(t, "100", got.Percentage.String())
		require.Equal(t, "-150", got.Remaining.String())
	})

	t.Run("missing budget key means zero budget and zero percent", func(t *testing.T) {
		txns := []Transaction{tx(KindExpense, "500", "SAR", "Markets", "2025-10-12")}
		got := ComputeUtilization(txns, nil, key)
		require.True(t, got.Budget.IsZero())
		require.Equal(t, "500", got.Spent.String())
		require.Equal(t, "-500", got.Remaining.String())
		require.True(t, got.Percentage.IsZero())
	})

	t.Run("only the budget month counts", func(t *testing.T) {
		txns := []Transaction{
			tx(KindExpense, "500", "SAR", "Markets", "2025-10-12"),
			tx(KindExpense, "700", "SAR", "Markets", "2025-09-30"),
			tx(KindExpense, "900", "SAR", "Markets", "2025-11-01"),
		}
		got := ComputeUtilization(txns, budgets, key)
		require.Equal(t, "500", got.Spent.String())
	})

	t.Run("income and other categories never count as spending", func(t *testing.T) {
		txns := []Transaction{
			tx(KindIncome, "500", "SAR", "Markets", "2025-10-12"),
			tx(KindExpense, "300", "SAR", "Restaurants", "2025-10-12"),
			tx(KindExpense, "200", "EGP", "Markets", "2025-10-12"),
		}
		got := ComputeUtilization(txns, budgets, key)
		require.True(t, got.Spent.IsZero())
	})
}

func TestSeverityBands(t *testing.T) {
	cases := []struct {
		pct  string
		want Severity
	}{
		{"0", SeverityNormal},
		{"79.99", SeverityNormal},
		{"80", SeverityWarning}, // inclusive lower bound
		{"99.99", SeverityWarning},
		{"100", SeverityOver}, // inclusive lower bound
	}
	for _, c := range cases {
		u := Utilization{Percentage: decimal.RequireFromString(c.pct)}
		require.Equal(t, c.want, u.Severity(), "pct=%s", c.pct)
	}
}

// Increasing any contributing transaction's amount never decreases
// spent and never increases remaining.
func TestUtilizationMonotonicInSpent(t *testing.T) {
	key := marketsOctober()
	budgets := map[BudgetKey]decimal.Decimal{key: decimal.NewFromInt(1000)}

	rapid.Check(t, func(rt *rapid.T) {
		var txns []Transaction
		n := rapid.IntRange(1, 8).Draw(rt, "n")
		for range n {
			txns = append(txns, Transaction{
				Kind:     KindExpense,
				Amount:   decimal.NewFromInt(rapid.Int64Range(1, 5000).Draw(rt, "amount")),
				Currency: "SAR",
				Category: "Markets",
				Date:     "2025-10-15",
			})
		}
		before := ComputeUtilization(txns, budgets, key)

		i := rapid.IntRange(0, n-1).Draw(rt, "i")
		bump := decimal.NewFromInt(rapid.Int64Range(1, 5000).Draw(rt, "bump"))
		txns[i].Amount = txns[i].Amount.Add(bump)
		after := ComputeUtilization(txns, budgets, key)

		require.True(rt, after.Spent.GreaterThanOrEqual(before.Spent))
		require.True(rt, after.Remaining.LessThanOrEqual(before.Remaining))
	})
}
