package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
)

// Response is the standard JSON envelope for all API responses.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// DB is the shared database connection used by all handlers.
var DB *sql.DB

// writeJSON writes a successful JSON response carrying data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: true, Data: data})
}

// writeMessage writes a successful JSON response carrying only a message.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: true, Message: msg})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: false, Message: msg})
}

type contextKey string

const cashierKey contextKey = "cashier"

func withCashier(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, cashierKey, id)
}

// CashierID returns the authenticated cashier identity for the request, or
// "" when none was established.
func CashierID(ctx context.Context) string {
	id, _ := ctx.Value(cashierKey).(string)
	return id
}

// CashierAuth is middleware that enforces HTTP Basic Authentication and
// records the authenticated user's identity in the request context, where
// payment recording picks it up.
func CashierAuth(next http.Handler) http.Handler {
	user := os.Getenv("AUTH_USER")
	pass := os.Getenv("AUTH_PASS")

	// If no credentials are configured, skip auth; the cashier identity
	// falls back to the CASHIER_ID environment variable.
	if user == "" && pass == "" {
		cashier := os.Getenv("CASHIER_ID")
		slog.Warn("AUTH_USER and AUTH_PASS not set, API is unauthenticated", "cashier_id", cashier)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(withCashier(r.Context(), cashier)))
		})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || u != user || p != pass {
			w.Header().Set("WWW-Authenticate", `Basic realm="billing"`)
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(withCashier(r.Context(), u)))
	})
}
