package handlers

import (
	"net/http"

	"github.com/Yasiru17-Induwara/cashier-repository/models"
)

type dashboardData struct {
	TotalCustomers    int            `json:"TotalCustomers"`
	OutstandingBills  int            `json:"OutstandingBills"`
	OutstandingAmount models.Decimal `json:"OutstandingAmount"`
	UnbilledReadings  int            `json:"UnbilledReadings"`
	PaymentsToday     int            `json:"PaymentsToday"`
	CollectedToday    models.Decimal `json:"CollectedToday"`
}

// GetDashboard retrieves cashier summary statistics
// @Summary      Get dashboard
// @Description  Get counts and totals for outstanding bills, unbilled readings, and today's payments.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  Response{data=dashboardData}
// @Router       /api/dashboard [get]
// @Security     BasicAuth
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	var d dashboardData

	DB.QueryRow("SELECT COUNT(*) FROM customers").Scan(&d.TotalCustomers)
	DB.QueryRow("SELECT COUNT(*) FROM bills WHERE status IN ('Unpaid', 'Overdue')").Scan(&d.OutstandingBills)
	DB.QueryRow("SELECT COALESCE(SUM(amount_due), 0) FROM bills WHERE status IN ('Unpaid', 'Overdue')").Scan(&d.OutstandingAmount)
	DB.QueryRow(`SELECT COUNT(*) FROM meter_readings r
		WHERE NOT EXISTS (SELECT 1 FROM bills b WHERE b.reading_id = r.reading_id)`).Scan(&d.UnbilledReadings)
	DB.QueryRow("SELECT COUNT(*) FROM payments WHERE DATE(payment_date) = DATE('now')").Scan(&d.PaymentsToday)
	DB.QueryRow("SELECT COALESCE(SUM(payment_amount), 0) FROM payments WHERE DATE(payment_date) = DATE('now')").Scan(&d.CollectedToday)

	writeJSON(w, http.StatusOK, d)
}
