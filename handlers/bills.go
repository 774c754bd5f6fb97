package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Yasiru17-Induwara/cashier-repository/db"
	"github.com/Yasiru17-Induwara/cashier-repository/models"
)

const billSelectQuery = `SELECT b.bill_id, b.customer_id, b.meter_id, b.reading_id, b.bill_date, b.due_date,
	b.previous_reading_value, b.current_reading_value, b.amount_due, b.status,
	b.created_at, b.updated_at,
	c.customer_name,
	COALESCE((SELECT SUM(p.payment_amount) FROM payments p WHERE p.bill_id = b.bill_id), 0)
	FROM bills b
	LEFT JOIN customers c ON b.customer_id = c.customer_id`

func scanBill(scanner interface{ Scan(...any) error }) (models.Bill, error) {
	var b models.Bill
	err := scanner.Scan(&b.BillID, &b.CustomerID, &b.MeterID, &b.ReadingID, &b.BillDate, &b.DueDate,
		&b.PreviousReadingValue, &b.CurrentReadingValue, &b.AmountDue, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
		&b.CustomerName, &b.Paid)
	if err == nil {
		b.Balance = models.Decimal(models.Round2(float64(b.AmountDue - b.Paid)))
	}
	return b, err
}

// ListOutstandingBills lists bills awaiting payment
// @Summary      List outstanding bills
// @Description  Get all bills with status Unpaid or Overdue, joined with the customer's name.
// @Tags         bills
// @Produce      json
// @Param        customer_id  query     string  false  "Filter by customer"
// @Param        search       query     string  false  "Search by bill ID or customer name"
// @Success      200          {object}  Response{data=[]models.OutstandingBill}
// @Router       /api/outstanding-bills [get]
// @Security     BasicAuth
func ListOutstandingBills(w http.ResponseWriter, r *http.Request) {
	query := `SELECT b.bill_id, b.customer_id, c.customer_name, b.bill_date, b.due_date, b.amount_due
		FROM bills b
		JOIN customers c ON b.customer_id = c.customer_id`
	conditions := []string{"b.status IN ('Unpaid', 'Overdue')"}
	var args []any

	if cid := r.URL.Query().Get("customer_id"); cid != "" {
		conditions = append(conditions, "b.customer_id = ?")
		args = append(args, cid)
	}
	if search := r.URL.Query().Get("search"); search != "" {
		conditions = append(conditions, "(b.bill_id LIKE ? OR c.customer_name LIKE ?)")
		s := "%" + search + "%"
		args = append(args, s, s)
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY b.due_date, b.bill_id"

	rows, err := DB.Query(query, args...)
	if err != nil {
		slog.Error("list outstanding bills", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve outstanding bills.")
		return
	}
	defer rows.Close()

	var bills []models.OutstandingBill
	for rows.Next() {
		var b models.OutstandingBill
		if err := rows.Scan(&b.BillID, &b.CustomerID, &b.CustomerName, &b.BillDate, &b.DueDate, &b.AmountDue); err != nil {
			slog.Error("scan outstanding bill", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve outstanding bills.")
			return
		}
		bills = append(bills, b)
	}
	if bills == nil {
		bills = []models.OutstandingBill{}
	}
	writeJSON(w, http.StatusOK, bills)
}

// GenerateBillFromReading creates a bill from a meter reading
// @Summary      Generate bill from reading
// @Description  Persist a new Unpaid bill derived from a reading. Each reading may be billed at most once.
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        bill  body      models.GenerateBillInput  true  "Bill contents"
// @Success      200   {object}  Response{message=string}
// @Failure      400   {object}  Response{message=string}
// @Failure      409   {object}  Response{message=string}
// @Router       /api/generate-bill-from-reading [post]
// @Security     BasicAuth
func GenerateBillFromReading(w http.ResponseWriter, r *http.Request) {
	var input models.GenerateBillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	billID := "BILL-" + uuid.NewString()
	_, err := DB.Exec(`INSERT INTO bills
		(bill_id, customer_id, meter_id, reading_id, bill_date, due_date,
		 previous_reading_value, current_reading_value, amount_due, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		billID, input.CustomerID, input.MeterID, input.ReadingID, input.BillDate, input.DueDate,
		input.PreviousReading, input.CurrentReading, input.AmountDue, models.BillStatusUnpaid)
	if err != nil {
		switch {
		case db.IsUniqueViolation(err):
			writeError(w, http.StatusConflict, "This reading is already billed.")
		case db.IsConstraintViolation(err):
			writeError(w, http.StatusBadRequest, "Unknown customer, meter, or reading.")
		default:
			slog.Error("generate bill", "error", err, "reading_id", input.ReadingID)
			writeError(w, http.StatusInternalServerError, "Failed to generate bill.")
		}
		return
	}

	slog.Info("bill generated", "bill_id", billID, "reading_id", input.ReadingID)
	writeMessage(w, http.StatusOK, "Bill generated successfully!")
}

// GetBill retrieves a single bill by ID
// @Summary      Get bill
// @Description  Get a bill with its customer name, paid-to-date sum, and remaining balance.
// @Tags         bills
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  Response{data=models.Bill}
// @Failure      404  {object}  Response{message=string}
// @Router       /api/bills/{id} [get]
// @Security     BasicAuth
func GetBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b, err := scanBill(DB.QueryRow(billSelectQuery+" WHERE b.bill_id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Bill not found.")
		} else {
			slog.Error("get bill", "error", err, "bill_id", id)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve bill.")
		}
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// GetBillPayments retrieves all payments recorded against a bill
// @Summary      Get bill payments
// @Description  Get the payment history of a specific bill.
// @Tags         bills
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  Response{data=[]models.Payment}
// @Router       /api/bills/{id}/payments [get]
// @Security     BasicAuth
func GetBillPayments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rows, err := DB.Query(`SELECT payment_id, bill_id, user_id, payment_amount, payment_method, payment_date
		FROM payments WHERE bill_id = ? ORDER BY payment_date, payment_id`, id)
	if err != nil {
		slog.Error("get bill payments", "error", err, "bill_id", id)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve payments.")
		return
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.PaymentID, &p.BillID, &p.UserID, &p.PaymentAmount, &p.PaymentMethod, &p.PaymentDate); err != nil {
			slog.Error("scan payment", "error", err, "bill_id", id)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve payments.")
			return
		}
		payments = append(payments, p)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}
