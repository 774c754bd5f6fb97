package main

//go:generate swag init

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Yasiru17-Induwara/cashier-repository/db"
	_ "github.com/Yasiru17-Induwara/cashier-repository/docs"
	"github.com/Yasiru17-Induwara/cashier-repository/handlers"
)

// @title           Utility Billing Cashier API
// @version         1.0.0
// @description     API for viewing outstanding utility bills, inspecting unbilled meter readings, generating bills, and recording payments.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.basic  BasicAuth

func main() {
	// Configure structured logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Open database
	database, err := db.Open()
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Set shared DB for handlers
	handlers.DB = database

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Cashier routes; CashierAuth establishes the acting user's identity
	r.Group(func(r chi.Router) {
		r.Use(handlers.CashierAuth)

		r.Route("/api", func(r chi.Router) {
			r.Get("/outstanding-bills", handlers.ListOutstandingBills)
			r.Get("/unbilled-readings", handlers.ListUnbilledReadings)
			r.Get("/reading-details/{id}", handlers.GetReadingDetails)
			r.Post("/generate-bill-from-reading", handlers.GenerateBillFromReading)

			r.Get("/bills/{id}", handlers.GetBill)
			r.Get("/bills/{id}/payments", handlers.GetBillPayments)

			r.Get("/customers", handlers.ListCustomers)
			r.Get("/customers/{id}", handlers.GetCustomer)

			r.Get("/dashboard", handlers.GetDashboard)
		})

		r.Post("/recordPayment", handlers.RecordPayment)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
