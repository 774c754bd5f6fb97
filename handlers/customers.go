package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Yasiru17-Induwara/cashier-repository/models"
)

const customerSelectQuery = `SELECT c.customer_id, c.customer_name,
	COALESCE((SELECT COUNT(*) FROM bills b WHERE b.customer_id = c.customer_id AND b.status != 'Paid'), 0),
	COALESCE((SELECT SUM(b.amount_due) FROM bills b WHERE b.customer_id = c.customer_id AND b.status != 'Paid'), 0)
	FROM customers c`

func scanCustomer(scanner interface{ Scan(...any) error }) (models.Customer, error) {
	var c models.Customer
	err := scanner.Scan(&c.CustomerID, &c.CustomerName, &c.OutstandingBills, &c.OutstandingAmount)
	return c, err
}

// ListCustomers lists all customers
// @Summary      List customers
// @Description  Get all customers with their outstanding bill count and total.
// @Tags         customers
// @Produce      json
// @Param        search  query     string  false  "Search by customer name"
// @Success      200     {object}  Response{data=[]models.Customer}
// @Router       /api/customers [get]
// @Security     BasicAuth
func ListCustomers(w http.ResponseWriter, r *http.Request) {
	query := customerSelectQuery
	var args []any

	if search := r.URL.Query().Get("search"); search != "" {
		query += " WHERE c.customer_name LIKE ?"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY c.customer_name"

	rows, err := DB.Query(query, args...)
	if err != nil {
		slog.Error("list customers", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve customers.")
		return
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			slog.Error("scan customer", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve customers.")
			return
		}
		customers = append(customers, c)
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// GetCustomer retrieves a single customer by ID
// @Summary      Get customer
// @Description  Get a customer with their outstanding bill count and total.
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  Response{data=models.Customer}
// @Failure      404  {object}  Response{message=string}
// @Router       /api/customers/{id} [get]
// @Security     BasicAuth
func GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, err := scanCustomer(DB.QueryRow(customerSelectQuery+" WHERE c.customer_id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Customer not found.")
		} else {
			slog.Error("get customer", "error", err, "customer_id", id)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve customer.")
		}
		return
	}
	writeJSON(w, http.StatusOK, c)
}
