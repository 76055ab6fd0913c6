package budgets

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestUpsertRequestValidate(t *testing.T) {
	valid := func() UpsertRequest {
		return UpsertRequest{
			Category: "Groceries",
			Currency: "SAR",
			Month:    "2025-10",
			Amount:   decimal.NewFromInt(2000),
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
	})

	t.Run("zero amount ok", func(t *testing.T) {
		req := valid()
		req.Amount = decimal.Zero
		require.NoError(t, req.Validate())
	})

	t.Run("negative amount", func(t *testing.T) {
		req := valid()
		req.Amount = decimal.NewFromInt(-1)
		require.Error(t, req.Validate())
	})

	t.Run("bad month", func(t *testing.T) {
		for _, month := range []string{"", "2025", "2025-1", "2025-10-14", "Oct 2025"} {
			req := valid()
			req.Month = month
			require.Error(t, req.Validate(), "month %q", month)
		}
	})

	t.Run("unsupported currency", func(t *testing.T) {
		req := valid()
		req.Currency = "INR"
		require.Error(t, req.Validate())
	})
}
