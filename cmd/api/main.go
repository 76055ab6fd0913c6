package main

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aelwazan-Hawx/Clarity/internal/auth"
	"github.com/aelwazan-Hawx/Clarity/internal/balances"
	"github.com/aelwazan-Hawx/Clarity/internal/budgets"
	"github.com/aelwazan-Hawx/Clarity/internal/categories"
	"github.com/aelwazan-Hawx/Clarity/internal/config"
	"github.com/aelwazan-Hawx/Clarity/internal/database"
	apphttp "github.com/aelwazan-Hawx/Clarity/internal/http"
	"github.com/aelwazan-Hawx/Clarity/internal/logger"
	"github.com/aelwazan-Hawx/Clarity/internal/paymentmethods"
	"github.com/aelwazan-Hawx/Clarity/internal/reports"
	"github.com/aelwazan-Hawx/Clarity/internal/router"
	"github.com/aelwazan-Hawx/Clarity/internal/settings"
	"github.com/aelwazan-Hawx/Clarity/internal/summary"
	"github.com/aelwazan-Hawx/Clarity/internal/transactions"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("config")
	}

	logger.SetLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		logger.SetJSON()
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("database")
	}
	defer pool.Close()

	app := fiber.New(fiber.Config{
		AppName:      "clarity",
		ErrorHandler: errorHandler,
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigins))
	app.Use(requestLogger())

	health := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	}
	app.Get("/health", health)
	app.Get("/healthz", health)

	txnRepo := transactions.NewRepository(pool)
	catRepo := categories.NewRepository(pool)
	pmRepo := paymentmethods.NewRepository(pool)
	budgetRepo := budgets.NewRepository(pool)
	balanceRepo := balances.NewRepository(pool)
	settingsRepo := settings.NewRepository(pool)

	r := &router.Router{
		Auth:           apphttp.NewAuthHandler(pool, cfg.JWTSecret),
		Transactions:   transactions.NewHandler(txnRepo),
		Categories:     categories.NewHandler(catRepo),
		PaymentMethods: paymentmethods.NewHandler(pmRepo),
		Budgets:        budgets.NewHandler(budgetRepo, txnRepo),
		Balances:       balances.NewHandler(balanceRepo, txnRepo),
		Settings:       settings.NewHandler(settingsRepo),
		Summary:        summary.NewHandler(txnRepo, catRepo),
		Reports:        reports.NewHandler(txnRepo, catRepo),
		AuthMW:         auth.Middleware([]byte(cfg.JWTSecret)),
		WriteLimit:     router.RateLimitWrite(cfg.RateLimitMax, cfg.RateLimitWindow),
	}
	r.RegisterRoutes(app)

	logger.Log.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal().Err(err).Msg("server")
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
