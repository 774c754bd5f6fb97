package handlers

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasiru17-Induwara/cashier-repository/models"
)

func paymentBody(billID string, amount string) string {
	return `{"bill-id":"` + billID + `","payment-amount":` + amount + `,"payment-method":"Cash"}`
}

func TestRecordPayment(t *testing.T) {
	database := newTestDB(t)
	router := testRouter()

	seedCustomer(t, database, "CUST-01", "Nimal Perera")
	seedMeter(t, database, "M-W1", "CUST-01", "UTIL-02")
	readingID := insertReading(t, database, "M-W1", 150, "2025-02-01")
	insertBill(t, database, "BILL-1", "CUST-01", "M-W1", readingID, 500, models.BillStatusUnpaid)

	t.Run("partial payment moves bill to Partial", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodPost, "/recordPayment", paymentBody("BILL-1", "200"))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, env.Success)
		assert.Equal(t, "Payment successfully recorded and bill updated.", env.Message)

		var status string
		require.NoError(t, database.QueryRow("SELECT status FROM bills WHERE bill_id = 'BILL-1'").Scan(&status))
		assert.Equal(t, models.BillStatusPartial, status)
	})

	t.Run("payment reaching the amount due moves bill to Paid", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/recordPayment", paymentBody("BILL-1", "300"))
		require.Equal(t, http.StatusOK, rec.Code)

		var status string
		require.NoError(t, database.QueryRow("SELECT status FROM bills WHERE bill_id = 'BILL-1'").Scan(&status))
		assert.Equal(t, models.BillStatusPaid, status)

		var cashier string
		require.NoError(t, database.QueryRow("SELECT user_id FROM payments WHERE bill_id = 'BILL-1' LIMIT 1").Scan(&cashier))
		assert.Equal(t, testCashier, cashier)
	})

	t.Run("paying a settled bill conflicts and writes nothing", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodPost, "/recordPayment", paymentBody("BILL-1", "50"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, env.Success)

		var count int
		require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM payments WHERE bill_id = 'BILL-1'").Scan(&count))
		assert.Equal(t, 2, count)
	})

	t.Run("unknown bill yields 404 and no state change", func(t *testing.T) {
		rec, env := doRequest(t, router, http.MethodPost, "/recordPayment", paymentBody("BILL-nope", "50"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)

		var count int
		require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM payments WHERE bill_id = 'BILL-nope'").Scan(&count))
		assert.Equal(t, 0, count)
	})
}

func TestRecordPaymentValidation(t *testing.T) {
	newTestDB(t)
	router := testRouter()

	cases := []struct {
		name string
		body string
	}{
		{"missing bill id", `{"payment-amount":50,"payment-method":"Cash"}`},
		{"zero amount", `{"bill-id":"BILL-1","payment-amount":0,"payment-method":"Cash"}`},
		{"negative amount", `{"bill-id":"BILL-1","payment-amount":-10,"payment-method":"Cash"}`},
		{"missing method", `{"bill-id":"BILL-1","payment-amount":50}`},
		{"malformed amount", `{"bill-id":"BILL-1","payment-amount":"ten","payment-method":"Cash"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := doRequest(t, router, http.MethodPost, "/recordPayment", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
		})
	}
}

func TestRecordPaymentRequiresCashier(t *testing.T) {
	newTestDB(t)

	// No auth middleware, so no cashier identity in the context.
	r := chi.NewRouter()
	r.Post("/recordPayment", RecordPayment)

	rec, env := doRequest(t, r, http.MethodPost, "/recordPayment", paymentBody("BILL-1", "50"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
}
