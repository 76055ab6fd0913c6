// Package summary serves per-currency income and expense totals
// computed by the ledger engine over the user's full history.
package summary

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/aelwazan-Hawx/Clarity/internal/auth"
	"github.com/aelwazan-Hawx/Clarity/internal/categories"
	"github.com/aelwazan-Hawx/Clarity/internal/domain"
	"github.com/aelwazan-Hawx/Clarity/internal/ledger"
	"github.com/aelwazan-Hawx/Clarity/internal/transactions"
)

type Handler struct {
	Transactions *transactions.Repository
	Categories   *categories.Repository
}

func NewHandler(txns *transactions.Repository, cats *categories.Repository) *Handler {
	return &Handler{Transactions: txns, Categories: cats}
}

type Summary struct {
	Currency     string          `json:"currency"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// Get returns totals for the requested currency, or one entry per
// supported currency when none is given. Month narrows to YYYY-MM.
func (h *Handler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	currency := c.Query("currency")
	if currency != "" && !domain.ValidCurrency(currency) {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported currency")
	}
	month := c.Query("month")

	rows, err := h.Transactions.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch transactions")
	}
	excluded, err := h.Categories.ExcludedSet(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch categories")
	}

	txns := transactions.ToLedger(rows)
	if month != "" {
		txns = ledger.Filter(txns, ledger.Criteria{From: month + "-01", To: month + "-31"})
	}

	if currency != "" {
		return c.JSON(summarize(txns, currency, excluded))
	}

	out := make([]Summary, 0, len(domain.CurrencyCodes()))
	for _, cur := range domain.CurrencyCodes() {
		out = append(out, summarize(txns, cur, excluded))
	}
	return c.JSON(out)
}

func summarize(txns []ledger.Transaction, currency string, excluded map[string]bool) Summary {
	t := ledger.ComputeTotals(txns, currency, excluded)
	return Summary{
		Currency:     currency,
		TotalIncome:  t.Income,
		TotalExpense: t.Expense,
		Balance:      t.Balance,
	}
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
