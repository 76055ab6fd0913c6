package categories

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

	cat := Category{
		UserID:             userID,
		Name:               req.Name,
		Type:               req.Type,
		ExcludedFromTotals: req.ExcludedFromTotals,
	}
	if err := h.Repo.Insert(userContext(c), &cat); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create category")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "created", EntityType: "category", EntityID: cat.ID,
	})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list categories")
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

	// The exclusion flag only changes when the request sets it.
	excluded := false
	if req.ExcludedFromTotals != nil {
		excluded = *req.ExcludedFromTotals
	} else {
		existing, err := h.Repo.Get(userContext(c), userID, id)
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update category")
		}
		excluded = existing.ExcludedFromTotals
	}

	cat := Category{ID: id, UserID: userID, Name: req.Name, ExcludedFromTotals: excluded}
	switch err := h.Repo.Update(userContext(c), &cat); {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "category not found")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update category")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "updated", EntityType: "category", EntityID: id,
	})
	return c.JSON(cat)
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
		return fiber.NewError(fiber.StatusNotFound, "category not found")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete category")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "deleted", EntityType: "category", EntityID: id,
	})
	return c.JSON(fiber.Map{"message": "category deleted"})
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
