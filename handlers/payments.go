package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Yasiru17-Induwara/cashier-repository/db"
	"github.com/Yasiru17-Induwara/cashier-repository/models"
)

// RecordPayment records a payment against a bill
// @Summary      Record payment
// @Description  Atomically record a payment and update the bill's status. The cashier identity is taken from the authenticated session.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      models.RecordPaymentInput  true  "Payment contents"
// @Success      200      {object}  Response{message=string}
// @Failure      400      {object}  Response{message=string}
// @Failure      401      {object}  Response{message=string}
// @Failure      404      {object}  Response{message=string}
// @Failure      409      {object}  Response{message=string}
// @Router       /recordPayment [post]
// @Security     BasicAuth
func RecordPayment(w http.ResponseWriter, r *http.Request) {
	var input models.RecordPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	cashier := CashierID(r.Context())
	if cashier == "" {
		writeError(w, http.StatusUnauthorized, "cashier identity required")
		return
	}

	newStatus, err := db.RecordPayment(DB, input.BillID, cashier, float64(input.PaymentAmount), input.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrBillNotFound):
			writeError(w, http.StatusNotFound, "Payment failed: Bill not found.")
		case errors.Is(err, db.ErrBillAlreadyPaid):
			writeError(w, http.StatusConflict, "Payment failed: Bill is already paid.")
		case errors.Is(err, db.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "Payment failed: amount must be positive.")
		default:
			slog.Error("record payment", "error", err, "bill_id", input.BillID)
			writeError(w, http.StatusInternalServerError, "Payment failed: database error.")
		}
		return
	}

	slog.Info("payment recorded", "bill_id", input.BillID, "cashier", cashier, "status", newStatus)
	writeMessage(w, http.StatusOK, "Payment successfully recorded and bill updated.")
}
