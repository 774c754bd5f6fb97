package models

// Customer represents a utility customer.
type Customer struct {
	CustomerID   string `json:"CustomerID"`
	CustomerName string `json:"CustomerName"`
	// Computed fields
	OutstandingBills  int     `json:"OutstandingBills"`  // bills not yet fully paid
	OutstandingAmount Decimal `json:"OutstandingAmount"` // sum of their amounts due
}
