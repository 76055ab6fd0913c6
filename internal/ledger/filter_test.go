package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	groceries := tx(KindExpense, "500", "SAR", "Markets", "2025-10-20")
	groceries.Description = "Weekly groceries"
	salary := tx(KindIncome, "15000", "SAR", "Salaries & Wages", "2025-10-20")
	salary.Description = "Monthly salary"
	dinner := tx(KindExpense, "200", "EGP", "Restaurants", "2025-10-19")
	dinner.Description = "Dinner"
	txns := []Transaction{groceries, salary, dinner}

	t.Run("no constraints passes everything", func(t *testing.T) {
		require.Len(t, Filter(txns, Criteria{}), 3)
	})

	t.Run("currency", func(t *testing.T) {
		got := Filter(txns, Criteria{Currency: "EGP"})
		require.Equal(t, []Transaction{dinner}, got)
	})

	t.Run("kind", func(t *testing.T) {
		got := Filter(txns, Criteria{Kind: KindIncome})
		require.Equal(t, []Transaction{salary}, got)
	})

	t.Run("category", func(t *testing.T) {
		got := Filter(txns, Criteria{Category: "Markets"})
		require.Equal(t, []Transaction{groceries}, got)
	})

	t.Run("date range bounds are inclusive", func(t *testing.T) {
		got := Filter(txns, Criteria{From: "2025-10-19", To: "2025-10-19"})
		require.Equal(t, []Transaction{dinner}, got)
	})

	t.Run("date range excludes later transactions", func(t *testing.T) {
		got := Filter(txns, Criteria{From: "2025-10-01", To: "2025-10-19"})
		require.Equal(t, []Transaction{dinner}, got)
	})

	t.Run("search matches category case-insensitively", func(t *testing.T) {
		got := Filter(txns, Criteria{Search: "markets"})
		require.Equal(t, []Transaction{groceries}, got)
	})

	t.Run("search matches description too", func(t *testing.T) {
		got := Filter(txns, Criteria{Search: "SALARY"})
		require.Equal(t, []Transaction{salary}, got)
	})

	t.Run("constraints combine with AND", func(t *testing.T) {
		got := Filter(txns, Criteria{Currency: "SAR", Kind: KindExpense})
		require.Equal(t, []Transaction{groceries}, got)
		require.Empty(t, Filter(txns, Criteria{Currency: "EGP", Kind: KindIncome}))
	})
}
