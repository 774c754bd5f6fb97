package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasiru17-Induwara/cashier-repository/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "billing.db")
	database, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, Migrate(database))
	return database
}

func seedBill(t *testing.T, database *sql.DB, billID string, amountDue float64, status string) {
	t.Helper()
	_, err := database.Exec("INSERT OR IGNORE INTO customers (customer_id, customer_name) VALUES ('CUST-01', 'Nimal Perera')")
	require.NoError(t, err)
	_, err = database.Exec("INSERT OR IGNORE INTO meters (meter_id, customer_id, utility_id) VALUES ('M-W1', 'CUST-01', 'UTIL-02')")
	require.NoError(t, err)

	res, err := database.Exec("INSERT INTO meter_readings (meter_id, reading_value, reading_date) VALUES ('M-W1', 100, '2025-01-01')")
	require.NoError(t, err)
	readingID, err := res.LastInsertId()
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO bills
		(bill_id, customer_id, meter_id, reading_id, bill_date, due_date, amount_due, status)
		VALUES (?, 'CUST-01', 'M-W1', ?, '2025-01-05', '2025-01-20', ?, ?)`,
		billID, readingID, amountDue, status)
	require.NoError(t, err)
}

func paymentCount(t *testing.T, database *sql.DB, billID string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM payments WHERE bill_id = ?", billID).Scan(&n))
	return n
}

func TestRecordPaymentTransitions(t *testing.T) {
	database := newTestDB(t)
	seedBill(t, database, "BILL-1", 500, models.BillStatusUnpaid)

	status, err := RecordPayment(database, "BILL-1", "U-003", 200, "Cash")
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPartial, status)

	status, err = RecordPayment(database, "BILL-1", "U-003", 300, "Card")
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, status)
	assert.Equal(t, 2, paymentCount(t, database, "BILL-1"))

	// a settled bill rejects further payments without writing anything
	_, err = RecordPayment(database, "BILL-1", "U-003", 50, "Cash")
	assert.ErrorIs(t, err, ErrBillAlreadyPaid)
	assert.Equal(t, 2, paymentCount(t, database, "BILL-1"))
}

func TestRecordPaymentOverdueBill(t *testing.T) {
	database := newTestDB(t)
	seedBill(t, database, "BILL-1", 250, models.BillStatusOverdue)

	status, err := RecordPayment(database, "BILL-1", "U-003", 250, "Cash")
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusPaid, status)
}

func TestRecordPaymentRejections(t *testing.T) {
	database := newTestDB(t)
	seedBill(t, database, "BILL-1", 500, models.BillStatusUnpaid)

	testCases := []struct {
		name    string
		billID  string
		amount  float64
		wantErr error
	}{
		{"unknown bill", "BILL-nope", 100, ErrBillNotFound},
		{"zero amount", "BILL-1", 0, ErrInvalidAmount},
		{"negative amount", "BILL-1", -10, ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RecordPayment(database, tc.billID, "U-003", tc.amount, "Cash")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// no rejection left a payment behind
	var n int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM payments").Scan(&n))
	assert.Equal(t, 0, n)

	var status string
	require.NoError(t, database.QueryRow("SELECT status FROM bills WHERE bill_id = 'BILL-1'").Scan(&status))
	assert.Equal(t, models.BillStatusUnpaid, status)
}
