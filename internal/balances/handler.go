package balances

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

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

	ob := OpeningBalance{
		UserID:        userID,
		PaymentMethod: req.PaymentMethod,
		Currency:      req.Currency,
		Amount:        req.Amount,
	}
	if err := h.Repo.Upsert(userContext(c), &ob); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save opening balance")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "updated", EntityType: "opening_balance", EntityID: ob.ID,
	})
	return c.Status(fiber.StatusCreated).JSON(ob)
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list opening balances")
	}
	return c.JSON(items)
}

// CurrentResponse is the running balance of one payment method.
type CurrentResponse struct {
	PaymentMethod  string          `json:"payment_method"`
	Currency       string          `json:"currency"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// Current reports the account's running balance: opening balance plus
// every income, minus every expense, for the (payment method, currency)
// pair. Negative results are legitimate.
func (h *Handler) Current(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	method := strings.TrimSpace(c.Query("payment_method"))
	currency := strings.TrimSpace(c.Query("currency"))
	if method == "" {
		return fiber.NewError(fiber.StatusBadRequest, "payment_method required")
	}
	if !domain.ValidCurrency(currency) {
		return fiber.NewError(fiber.StatusBadRequest, "currency must be SAR or EGP")
	}

	openings, err := h.Repo.MapByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load opening balances")
	}
	rows, err := h.TxRepo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions")
	}

	key := ledger.AccountKey{PaymentMethod: method, Currency: currency}
	opening := openings[key] // zero when unset
	current := ledger.ComputeRunningBalance(transactions.ToLedger(rows), opening, key)

	return c.JSON(CurrentResponse{
		PaymentMethod:  method,
		Currency:       currency,
		OpeningBalance: opening,
		CurrentBalance: current,
	})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
