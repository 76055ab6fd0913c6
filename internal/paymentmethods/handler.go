package paymentmethods

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/aelwazan-Hawx/Clarity/internal/audit"
	"github.com/aelwazan-Hawx/Clarity/internal/auth"
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

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	pm := PaymentMethod{UserID: userID, Name: req.Name, Currency: req.Currency}
	if err := h.Repo.Insert(userContext(c), &pm); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create payment method")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "created", EntityType: "payment_method", EntityID: pm.ID,
	})
	return c.Status(fiber.StatusCreated).JSON(pm)
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list payment methods")
	}
	return c.JSON(items)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	pm := PaymentMethod{ID: id, UserID: userID, Name: req.Name}
	switch err := h.Repo.Update(userContext(c), &pm); {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "payment method not found")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update payment method")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "updated", EntityType: "payment_method", EntityID: id,
	})
	return c.JSON(pm)
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
		return fiber.NewError(fiber.StatusNotFound, "payment method not found")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete payment method")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "deleted", EntityType: "payment_method", EntityID: id,
	})
	return c.JSON(fiber.Map{"message": "payment method deleted"})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
