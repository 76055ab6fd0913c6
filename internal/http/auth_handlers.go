// Package http holds the unauthenticated account endpoints: register,
// login and the profile lookup behind the auth middleware.
package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/aelwazan-Hawx/Clarity/internal/auth"
	"github.com/aelwazan-Hawx/Clarity/internal/domain"
	"github.com/aelwazan-Hawx/Clarity/internal/logger"
)

const minPasswordLen = 6

type AuthHandler struct {
	DB     *pgxpool.Pool
	Secret string
}

func NewAuthHandler(db *pgxpool.Pool, secret string) *AuthHandler {
	return &AuthHandler{DB: db, Secret: secret}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.Email == "" || !strings.Contains(body.Email, "@") {
		return fiber.NewError(fiber.StatusBadRequest, "a valid email is required")
	}
	if len(body.Password) < minPasswordLen {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	ctx := userContext(c)

	var u domain.User
	err = h.DB.QueryRow(
		ctx,
		`INSERT INTO users (email, password_hash, name)
         VALUES ($1, $2, $3)
         RETURNING id, email, name, exchange_rate, created_at`,
		body.Email, string(hashed), strings.TrimSpace(body.Name),
	).Scan(&u.ID, &u.Email, &u.Name, &u.ExchangeRate, &u.CreatedAt)
	if isUniqueViolation(err) {
		return fiber.NewError(fiber.StatusBadRequest, "an account with this email already exists")
	}
	if err != nil {
		logger.Log.Error().Err(err).Msg("register: insert user")
		return fiber.NewError(fiber.StatusInternalServerError, "could not create user")
	}

	token, err := auth.GenerateToken([]byte(h.Secret), u.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse{Token: token, User: u})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	ctx := userContext(c)

	var u domain.User
	err := h.DB.QueryRow(
		ctx,
		`SELECT id, email, password_hash, name, exchange_rate, created_at
         FROM users WHERE email = $1`,
		body.Email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.ExchangeRate, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		logger.Log.Error().Err(err).Msg("login: lookup user")
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := auth.GenerateToken([]byte(h.Secret), u.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return c.JSON(authResponse{Token: token, User: u})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var u domain.User
	err = h.DB.QueryRow(
		userContext(c),
		`SELECT id, email, name, exchange_rate, created_at
         FROM users WHERE id = $1::uuid`,
		userID,
	).Scan(&u.ID, &u.Email, &u.Name, &u.ExchangeRate, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	return c.JSON(u)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
