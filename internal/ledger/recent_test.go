package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func datedTx(id, date string, createdAt time.Time) Transaction {
	t := tx(KindExpense, "10", "SAR", "Markets", date)
	t.ID = id
	t.CreatedAt = createdAt
	return t
}

func TestRecentOrdering(t *testing.T) {
	base := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	txns := []Transaction{
		datedTx("c", "2025-10-18", base),
		datedTx("a", "2025-10-20", base),
		datedTx("b", "2025-10-20", base.Add(time.Hour)), // same day, created later
		datedTx("d", "2025-09-30", base),
	}

	var ids []string
	for tr := range Recent(txns) {
		ids = append(ids, tr.ID)
	}
	require.Equal(t, []string{"b", "a", "c", "d"}, ids)
}

func TestRecentIsRestartable(t *testing.T) {
	base := time.Now()
	txns := []Transaction{
		datedTx("a", "2025-10-20", base),
		datedTx("b", "2025-10-19", base),
	}

	seq := Recent(txns)
	for range 2 {
		var ids []string
		for tr := range seq {
			ids = append(ids, tr.ID)
		}
		require.Equal(t, []string{"a", "b"}, ids)
	}
}

func TestTakeRecent(t *testing.T) {
	base := time.Now()
	var txns []Transaction
	for _, d := range []string{"2025-10-01", "2025-10-05", "2025-10-03", "2025-10-04", "2025-10-02"} {
		txns = append(txns, datedTx(d, d, base))
	}

	t.Run("prefix without materializing the rest", func(t *testing.T) {
		got := TakeRecent(txns, 2)
		require.Len(t, got, 2)
		require.Equal(t, "2025-10-05", got[0].Date)
		require.Equal(t, "2025-10-04", got[1].Date)
	})

	t.Run("asking for more than exists returns all", func(t *testing.T) {
		require.Len(t, TakeRecent(txns, 50), 5)
	})

	t.Run("non-positive n returns nothing", func(t *testing.T) {
		require.Nil(t, TakeRecent(txns, 0))
	})

	t.Run("input slice is left untouched", func(t *testing.T) {
		before := append([]Transaction{}, txns...)
		_ = TakeRecent(txns, 3)
		require.Equal(t, before, txns)
	})
}
