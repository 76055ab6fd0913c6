package reports

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/aelwazan-Hawx/Clarity/internal/auth"
	"github.com/aelwazan-Hawx/Clarity/internal/ledger"
)

type CategoryRow struct {
	Category string          `json:"category"`
	Type     string          `json:"type"` // income or expense
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

type CategoriesResponse struct {
	Currency string        `json:"currency"`
	From     string        `json:"from"`
	To       string        `json:"to"`
	Top      []CategoryRow `json:"top"`
}

// TopCategories returns spend and income grouped by category for the
// period, largest first. Excluded categories are reported too; the
// client decides whether to surface them.
func (h *Handler) TopCategories(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	p, err := parsePeriod(c)
	if err != nil {
		return err
	}

	txns, _, err := h.load(userContext(c), userID, p)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build report")
	}

	type groupKey struct {
		category string
		kind     ledger.Kind
	}
	groups := make(map[groupKey]CategoryRow)
	for _, t := range txns {
		k := groupKey{category: t.Category, kind: t.Kind}
		row := groups[k]
		row.Category = t.Category
		row.Type = string(t.Kind)
		row.Total = row.Total.Add(t.Amount)
		row.Count++
		groups[k] = row
	}

	top := make([]CategoryRow, 0, len(groups))
	for _, row := range groups {
		top = append(top, row)
	}
	sort.Slice(top, func(i, j int) bool {
		if !top[i].Total.Equal(top[j].Total) {
			return top[i].Total.GreaterThan(top[j].Total)
		}
		return top[i].Category < top[j].Category
	})

	return c.JSON(CategoriesResponse{
		Currency: p.Currency,
		From:     p.From,
		To:       p.To,
		Top:      top,
	})
}
