package transactions

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/aelwazan-Hawx/Clarity/internal/audit"
	"github.com/aelwazan-Hawx/Clarity/internal/auth"
	"github.com/aelwazan-Hawx/Clarity/internal/ledger"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req WriteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	t := Transaction{
		UserID:        userID,
		Date:          req.Date,
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
	}
	if err := h.Repo.Insert(userContext(c), &t); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create transaction")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "created", EntityType: "transaction", EntityID: t.ID,
	})
	return c.Status(fiber.StatusCreated).JSON(t)
}

// List returns the user's transactions, optionally narrowed by the
// query parameters currency, type, category, from, to and q. Filtering
// runs through the ledger criteria combinator so the semantics match
// the client-side filters exactly.
func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	rows, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list transactions")
	}

	crit := ledger.Criteria{
		Currency: strings.TrimSpace(c.Query("currency")),
		Kind:     ledger.Kind(strings.TrimSpace(c.Query("type"))),
		Category: strings.TrimSpace(c.Query("category")),
		From:     strings.TrimSpace(c.Query("from")),
		To:       strings.TrimSpace(c.Query("to")),
		Search:   strings.TrimSpace(c.Query("q")),
	}
	if crit == (ledger.Criteria{}) {
		return c.JSON(rows)
	}

	filtered := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		if crit.Matches(row.ToLedger()) {
			filtered = append(filtered, row)
		}
	}
	return c.JSON(filtered)
}

// Recent returns the most recent transactions (default 5), ordered by
// date then creation time descending.
func (h *Handler) Recent(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	limit := 5
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > 100 {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be between 1 and 100")
		}
		limit = parsed
	}

	rows, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list transactions")
	}

	byID := make(map[string]Transaction, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	recent := ledger.TakeRecent(ToLedger(rows), limit)
	out := make([]Transaction, 0, len(recent))
	for _, lt := range recent {
		out = append(out, byID[lt.ID])
	}
	return c.JSON(out)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req WriteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	t := Transaction{
		ID:            id,
		UserID:        userID,
		Date:          req.Date,
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Description:   req.Description,
	}
	switch err := h.Repo.Update(userContext(c), &t); {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "transaction not found")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update transaction")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "updated", EntityType: "transaction", EntityID: id,
	})
	return c.JSON(t)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	switch err := h.Repo.Delete(userContext(c), userID, id); {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "transaction not found")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete transaction")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "deleted", EntityType: "transaction", EntityID: id,
	})
	return c.JSON(fiber.Map{"message": "transaction deleted"})
}

func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
