package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yasiru17-Induwara/cashier-repository/models"
)

// Payment-recording rejections, mapped to client errors by handlers.
var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrBillAlreadyPaid = errors.New("bill is already paid")
	ErrInvalidAmount   = errors.New("payment amount must be positive")
)

// RecordPayment records a payment against a bill and moves the bill's status
// accordingly, all inside a single transaction: either the payment row and
// the status update both persist, or neither does. Returns the bill's new
// status.
func RecordPayment(database *sql.DB, billID, userID string, amount float64, method string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	tx, err := database.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning payment transaction: %w", err)
	}
	defer tx.Rollback()

	var amountDue float64
	var status string
	err = tx.QueryRow("SELECT amount_due, status FROM bills WHERE bill_id = ?", billID).Scan(&amountDue, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrBillNotFound
	}
	if err != nil {
		return "", fmt.Errorf("loading bill %s: %w", billID, err)
	}
	if status == models.BillStatusPaid {
		return "", ErrBillAlreadyPaid
	}

	if _, err := tx.Exec(`INSERT INTO payments (bill_id, user_id, payment_amount, payment_method)
		VALUES (?, ?, ?, ?)`, billID, userID, amount, method); err != nil {
		return "", fmt.Errorf("inserting payment: %w", err)
	}

	var paid float64
	if err := tx.QueryRow("SELECT COALESCE(SUM(payment_amount), 0) FROM payments WHERE bill_id = ?", billID).Scan(&paid); err != nil {
		return "", fmt.Errorf("summing payments: %w", err)
	}

	newStatus := models.BillStatusPartial
	if paid >= amountDue {
		newStatus = models.BillStatusPaid
	}
	if _, err := tx.Exec("UPDATE bills SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE bill_id = ?",
		newStatus, billID); err != nil {
		return "", fmt.Errorf("updating bill status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing payment transaction: %w", err)
	}
	return newStatus, nil
}
