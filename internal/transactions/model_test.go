package transactions

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validRequest() WriteRequest {
	return WriteRequest{
		Date:          "2025-10-14",
		Type:          "expense",
		Category:      "Groceries",
		Amount:        decimal.NewFromInt(250),
		Currency:      "SAR",
		PaymentMethod: "Alinma Bank",
		Description:   "weekly shop",
	}
}

func TestWriteRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validRequest()
		require.NoError(t, req.Validate())
	})

	t.Run("bad date", func(t *testing.T) {
		for _, date := range []string{"", "14-10-2025", "2025-13-01", "2025-10-14T00:00:00Z"} {
			req := validRequest()
			req.Date = date
			require.Error(t, req.Validate(), "date %q", date)
		}
	})

	t.Run("bad type", func(t *testing.T) {
		req := validRequest()
		req.Type = "transfer"
		require.Error(t, req.Validate())
	})

	t.Run("empty category", func(t *testing.T) {
		req := validRequest()
		req.Category = "   "
		require.Error(t, req.Validate())
	})

	t.Run("non-positive amount", func(t *testing.T) {
		for _, amt := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			req := validRequest()
			req.Amount = amt
			require.Error(t, req.Validate())
		}
	})

	t.Run("unsupported currency", func(t *testing.T) {
		req := validRequest()
		req.Currency = "USD"
		require.Error(t, req.Validate())
	})

	t.Run("empty payment method", func(t *testing.T) {
		req := validRequest()
		req.PaymentMethod = ""
		require.Error(t, req.Validate())
	})

	t.Run("trims fields", func(t *testing.T) {
		req := validRequest()
		req.Category = "  Groceries  "
		req.PaymentMethod = " Cash "
		require.NoError(t, req.Validate())
		require.Equal(t, "Groceries", req.Category)
		require.Equal(t, "Cash", req.PaymentMethod)
	})
}

func TestToLedger(t *testing.T) {
	rows := []Transaction{
		{ID: "a", Date: "2025-10-01", Type: "income", Amount: decimal.NewFromInt(100), Currency: "SAR"},
		{ID: "b", Date: "2025-10-02", Type: "expense", Amount: decimal.NewFromInt(40), Currency: "EGP"},
	}

	out := ToLedger(rows)
	require.Len(t, out, 2)
	require.Equal(t, "a", out[0].ID)
	require.Equal(t, "income", string(out[0].Kind))
	require.Equal(t, "EGP", out[1].Currency)
	require.True(t, out[1].Amount.Equal(decimal.NewFromInt(40)))
}
