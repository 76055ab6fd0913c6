// Package router wires handlers to routes and carries the shared HTTP
// middleware: CORS, rate limits and the auth guard.
package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aelwazan-Hawx/Clarity/internal/balances"
	"github.com/aelwazan-Hawx/Clarity/internal/budgets"
	"github.com/aelwazan-Hawx/Clarity/internal/categories"
	handlers "github.com/aelwazan-Hawx/Clarity/internal/http"
	"github.com/aelwazan-Hawx/Clarity/internal/paymentmethods"
	"github.com/aelwazan-Hawx/Clarity/internal/reports"
	"github.com/aelwazan-Hawx/Clarity/internal/settings"
	"github.com/aelwazan-Hawx/Clarity/internal/summary"
	"github.com/aelwazan-Hawx/Clarity/internal/transactions"
)

type Router struct {
	Auth           *handlers.AuthHandler
	Transactions   *transactions.Handler
	Categories     *categories.Handler
	PaymentMethods *paymentmethods.Handler
	Budgets        *budgets.Handler
	Balances       *balances.Handler
	Settings       *settings.Handler
	Summary        *summary.Handler
	Reports        *reports.Handler
	AuthMW         fiber.Handler

	// WriteLimit guards mutating routes; main builds it from config.
	WriteLimit fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	authLimit := RateLimitAuth()
	writeLimit := r.WriteLimit
	if writeLimit == nil {
		writeLimit = RateLimitWrite(60, time.Minute)
	}

	app.Post("/api/auth/register", authLimit, r.Auth.Register)
	app.Post("/api/auth/login", authLimit, r.Auth.Login)
	app.Get("/api/me", r.AuthMW, r.Auth.Me)

	app.Post("/api/transactions", r.AuthMW, writeLimit, r.Transactions.Create)
	app.Get("/api/transactions", r.AuthMW, r.Transactions.List)
	app.Get("/api/transactions/recent", r.AuthMW, r.Transactions.Recent)
	app.Put("/api/transactions/:id", r.AuthMW, writeLimit, r.Transactions.Update)
	app.Delete("/api/transactions/:id", r.AuthMW, writeLimit, r.Transactions.Delete)

	app.Get("/api/categories", r.AuthMW, r.Categories.List)
	app.Post("/api/categories", r.AuthMW, writeLimit, r.Categories.Create)
	app.Put("/api/categories/:id", r.AuthMW, writeLimit, r.Categories.Update)
	app.Delete("/api/categories/:id", r.AuthMW, writeLimit, r.Categories.Delete)

	app.Get("/api/payment-methods", r.AuthMW, r.PaymentMethods.List)
	app.Post("/api/payment-methods", r.AuthMW, writeLimit, r.PaymentMethods.Create)
	app.Put("/api/payment-methods/:id", r.AuthMW, writeLimit, r.PaymentMethods.Update)
	app.Delete("/api/payment-methods/:id", r.AuthMW, writeLimit, r.PaymentMethods.Delete)

	app.Get("/api/budgets", r.AuthMW, r.Budgets.List)
	app.Post("/api/budgets", r.AuthMW, writeLimit, r.Budgets.Upsert)
	app.Get("/api/budgets/utilization", r.AuthMW, r.Budgets.Utilization)
	app.Delete("/api/budgets/:id", r.AuthMW, writeLimit, r.Budgets.Delete)

	app.Get("/api/opening-balances", r.AuthMW, r.Balances.List)
	app.Post("/api/opening-balances", r.AuthMW, writeLimit, r.Balances.Upsert)
	app.Get("/api/opening-balances/current", r.AuthMW, r.Balances.Current)

	app.Get("/api/settings", r.AuthMW, r.Settings.Get)
	app.Put("/api/settings/exchange-rate", r.AuthMW, writeLimit, r.Settings.UpdateExchangeRate)

	app.Get("/api/summary", r.AuthMW, r.Summary.Get)

	app.Get("/api/reports", r.AuthMW, r.Reports.Get)
	app.Get("/api/reports/categories", r.AuthMW, r.Reports.TopCategories)
	app.Get("/api/reports/statement", r.AuthMW, r.Reports.StatementPDF)
}
