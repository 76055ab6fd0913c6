package reports

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aelwazan-Hawx/Clarity/internal/ledger"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"1234.5", "1,234.50"},
		{"1234567.89", "1,234,567.89"},
		{"-9876.1", "-9,876.10"},
	}
	for _, tc := range cases {
		d := decimal.RequireFromString(tc.in)
		require.Equal(t, tc.want, formatMoney(d), "input %s", tc.in)
	}
}

func TestFormatMoneySigned(t *testing.T) {
	d := decimal.NewFromInt(1500)
	require.Equal(t, "-1,500.00", formatMoneySigned(d, ledger.KindExpense))
	require.Equal(t, "1,500.00", formatMoneySigned(d, ledger.KindIncome))
}

func TestTrimAndMaskHelpers(t *testing.T) {
	require.Equal(t, "short", trimTo("short", 10))
	require.Len(t, trimTo("a very long category name indeed", 10), 10)

	require.Equal(t, "abcd1234", shortID("abcd1234"))
	require.Equal(t, "abcd1234", shortID("abcd1234-5678"))

	id := "3f2b7c1a-9d4e-4f60-8a2b-77aa00112233"
	require.Equal(t, "3f2b...2233", maskID(id))
}
