// Package settings exposes per-user preferences. The only setting today
// is the SAR to EGP exchange rate the client uses for combined views.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/aelwazan-Hawx/Clarity/internal/audit"
	"github.com/aelwazan-Hawx/Clarity/internal/auth"
)

var ErrNotFound = errors.New("user not found")

type Settings struct {
	ExchangeRate decimal.Decimal `db:"exchange_rate" json:"exchange_rate"`
}

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) Get(ctx context.Context, userID string) (Settings, error) {
	var s Settings
	err := r.Pool.QueryRow(ctx,
		`SELECT exchange_rate FROM users WHERE id = $1::uuid`,
		userID,
	).Scan(&s.ExchangeRate)
	if errors.Is(err, pgx.ErrNoRows) {
		return Settings{}, ErrNotFound
	}
	if err != nil {
		return Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return s, nil
}

// UpdateExchangeRate replaces the per-user rate in place; settings are
// a singleton row per user, never appended.
func (r *Repository) UpdateExchangeRate(ctx context.Context, userID string, rate decimal.Decimal) (Settings, error) {
	var s Settings
	err := r.Pool.QueryRow(ctx,
		`UPDATE users SET exchange_rate = $1 WHERE id = $2::uuid RETURNING exchange_rate`,
		rate, userID,
	).Scan(&s.ExchangeRate)
	if errors.Is(err, pgx.ErrNoRows) {
		return Settings{}, ErrNotFound
	}
	if err != nil {
		return Settings{}, fmt.Errorf("update exchange rate: %w", err)
	}
	return s, nil
}

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	s, err := h.Repo.Get(userContext(c), userID)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch settings")
	}
	return c.JSON(s)
}

type updateRateRequest struct {
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

func (h *Handler) UpdateExchangeRate(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req updateRateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if !req.ExchangeRate.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "exchange_rate must be greater than zero")
	}

	s, err := h.Repo.UpdateExchangeRate(userContext(c), userID, req.ExchangeRate)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update exchange rate")
	}

	audit.Write(userContext(c), h.Repo.Pool, audit.Entry{
		UserID: userID, Action: "updated", EntityType: "settings", EntityID: userID,
	})
	return c.JSON(s)
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
