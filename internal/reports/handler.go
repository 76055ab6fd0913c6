// Package reports produces period reports over the ledger: a daily
// income/expense series, a category breakdown and a PDF statement.
// All figures come from the ledger engine, so exclusions and currency
// isolation behave exactly as the summary endpoints do.
package reports

import (
	"context"
	"strings"
	"time"

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

// period is the parsed and validated from/to/currency query triple.
type period struct {
	From     string
	To       string
	Currency string
}

// parsePeriod defaults to the trailing 30 days when no range is given.
func parsePeriod(c *fiber.Ctx) (period, error) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		end := time.Now()
		start := end.AddDate(0, 0, -29)
		from = start.Format("2006-01-02")
		to = end.Format("2006-01-02")
	}

	if _, err := time.Parse("2006-01-02", from); err != nil {
		return period{}, fiber.NewError(fiber.StatusBadRequest, "from must be YYYY-MM-DD")
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return period{}, fiber.NewError(fiber.StatusBadRequest, "to must be YYYY-MM-DD")
	}
	if from > to {
		return period{}, fiber.NewError(fiber.StatusBadRequest, "from must not be after to")
	}

	currency := strings.TrimSpace(c.Query("currency"))
	if currency == "" {
		currency = "SAR"
	}
	if !domain.ValidCurrency(currency) {
		return period{}, fiber.NewError(fiber.StatusBadRequest, "unsupported currency")
	}

	return period{From: from, To: to, Currency: currency}, nil
}

// load fetches the user's rows for the period in ledger form, along
// with the excluded-category set.
func (h *Handler) load(ctx context.Context, userID string, p period) ([]ledger.Transaction, map[string]bool, error) {
	rows, err := h.Transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	excluded, err := h.Categories.ExcludedSet(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	txns := ledger.Filter(transactions.ToLedger(rows), ledger.Criteria{
		Currency: p.Currency,
		From:     p.From,
		To:       p.To,
	})
	return txns, excluded, nil
}

type DayPoint struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

type ReportResponse struct {
	Currency     string          `json:"currency"`
	From         string          `json:"from"`
	To           string          `json:"to"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
	Daily        []DayPoint      `json:"daily"`
}

// Get returns period totals plus a day-by-day series with a running
// balance, one point per calendar day even when nothing happened.
func (h *Handler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	p, err := parsePeriod(c)
	if err != nil {
		return err
	}

	txns, excluded, err := h.load(userContext(c), userID, p)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build report")
	}

	totals := ledger.ComputeTotals(txns, p.Currency, excluded)

	type dayAgg struct{ income, expense decimal.Decimal }
	byDay := make(map[string]dayAgg)
	for _, t := range txns {
		agg := byDay[t.Date]
		switch t.Kind {
		case ledger.KindIncome:
			agg.income = agg.income.Add(t.Amount)
		case ledger.KindExpense:
			if !excluded[t.Category] {
				agg.expense = agg.expense.Add(t.Amount)
			}
		}
		byDay[t.Date] = agg
	}

	start, _ := time.Parse("2006-01-02", p.From)
	end, _ := time.Parse("2006-01-02", p.To)

	var daily []DayPoint
	var running decimal.Decimal
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format("2006-01-02")
		agg := byDay[day]
		running = running.Add(agg.income).Sub(agg.expense)
		daily = append(daily, DayPoint{
			Date:    day,
			Income:  agg.income,
			Expense: agg.expense,
			Balance: running,
		})
	}

	return c.JSON(ReportResponse{
		Currency:     p.Currency,
		From:         p.From,
		To:           p.To,
		TotalIncome:  totals.Income,
		TotalExpense: totals.Expense,
		Balance:      totals.Balance,
		Daily:        daily,
	})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
