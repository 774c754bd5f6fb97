package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Yasiru17-Induwara/cashier-repository/db"
)

const testCashier = "U-003"

// envelope mirrors Response with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// newTestDB opens a fresh migrated store under a temp dir and installs it as
// the shared handler connection.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "billing.db")
	database, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.Migrate(database))
	DB = database
	return database
}

// testRouter mirrors the route table in main, with a fixed cashier identity
// in place of Basic Auth.
func testRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(withCashier(req.Context(), testCashier)))
		})
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/outstanding-bills", ListOutstandingBills)
		r.Get("/unbilled-readings", ListUnbilledReadings)
		r.Get("/reading-details/{id}", GetReadingDetails)
		r.Post("/generate-bill-from-reading", GenerateBillFromReading)
		r.Get("/bills/{id}", GetBill)
		r.Get("/bills/{id}/payments", GetBillPayments)
		r.Get("/customers", ListCustomers)
		r.Get("/customers/{id}", GetCustomer)
		r.Get("/dashboard", GetDashboard)
	})
	r.Post("/recordPayment", RecordPayment)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

func seedCustomer(t *testing.T, database *sql.DB, id, name string) {
	t.Helper()
	_, err := database.Exec("INSERT INTO customers (customer_id, customer_name) VALUES (?, ?)", id, name)
	require.NoError(t, err)
}

func seedMeter(t *testing.T, database *sql.DB, meterID, customerID, utilityID string) {
	t.Helper()
	_, err := database.Exec("INSERT INTO meters (meter_id, customer_id, utility_id) VALUES (?, ?, ?)",
		meterID, customerID, utilityID)
	require.NoError(t, err)
}

func insertReading(t *testing.T, database *sql.DB, meterID string, value float64, date string) int64 {
	t.Helper()
	res, err := database.Exec("INSERT INTO meter_readings (meter_id, reading_value, reading_date) VALUES (?, ?, ?)",
		meterID, value, date)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func insertBill(t *testing.T, database *sql.DB, billID, customerID, meterID string, readingID int64, amountDue float64, status string) {
	t.Helper()
	_, err := database.Exec(`INSERT INTO bills
		(bill_id, customer_id, meter_id, reading_id, bill_date, due_date,
		 previous_reading_value, current_reading_value, amount_due, status)
		VALUES (?, ?, ?, ?, '2025-01-01', '2025-01-15', 0, 0, ?, ?)`,
		billID, customerID, meterID, readingID, amountDue, status)
	require.NoError(t, err)
}
