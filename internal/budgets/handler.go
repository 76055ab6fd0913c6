package budgets

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/aelwazan-Hawx/Clarity/internal/audit"
	"github.com/aelwazan-Hawx/Clarity/internal/auth"
	"github.com/aelwazan-Hawx/Clarity/internal/domain"
	"github.com/aelwazan-Hawx/Clarity/internal/ledger"
	"github.com/aelwazan-Hawx/Clarity/internal/transactions"
)

type Handler struct {
	Repo   *Repository
	TxRepo *transactions.Repository
}

func NewHandler(repo *Repository, txRepo *transactions.Repository) *Handler {
	return &Handler{Repo: repo, TxRepo: txRepo}
}

// Upsert creates or replaces the budget for a (category, currency,
// month) key. POSTing the same key twice never produces two rows.
func (h *Handler) Upsert(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req UpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	b := Budget{
		UserID:   userID,
		Category: req.Category,
		Currency: req.Currency,
		Month:    req.Month,
		Amount:   req.Amount,
	}
	if err := h.Repo.Upsert(userContext(c), &b); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save budget")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "updated", EntityType: "budget", EntityID: b.ID,
	})
	return c.Status(fiber.StatusCreated).JSON(b)
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list budgets")
	}
	return c.JSON(items)
}

// UtilizationResponse mirrors the engine result plus its severity band.
type UtilizationResponse struct {
	Category string `json:"category"`
	Currency string `json:"currency"`
	Month    string `json:"month"`
	ledger.Utilization
	Severity ledger.Severity `json:"severity"`
}

// Utilization reports the budget usage for one category/currency/month.
func (h *Handler) Utilization(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	category := strings.TrimSpace(c.Query("category"))
	currency := strings.TrimSpace(c.Query("currency"))
	month := strings.TrimSpace(c.Query("month"))
	if category == "" {
		return fiber.NewError(fiber.StatusBadRequest, "category required")
	}
	if !domain.ValidCurrency(currency) {
		return fiber.NewError(fiber.StatusBadRequest, "currency must be SAR or EGP")
	}
	if !monthRe.MatchString(month) {
		return fiber.NewError(fiber.StatusBadRequest, "month must be YYYY-MM")
	}

	budgetMap, err := h.Repo.MapByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load budgets")
	}
	rows, err := h.TxRepo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions")
	}

	key := ledger.BudgetKey{Category: category, Currency: currency, Month: month}
	u := ledger.ComputeUtilization(transactions.ToLedger(rows), budgetMap, key)

	return c.JSON(UtilizationResponse{
		Category:    category,
		Currency:    currency,
		Month:       month,
		Utilization: u,
		Severity:    u.Severity(),
	})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	switch err := h.Repo.Delete(userContext(c), userID, id); {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "budget not found")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete budget")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "deleted", EntityType: "budget", EntityID: id,
	})
	return c.JSON(fiber.Map{"message": "budget deleted"})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
