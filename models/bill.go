package models

import (
	"time"
)

// Bill statuses. Overdue is assigned out-of-band when a due date lapses;
// payments move a bill through Partial to Paid.
const (
	BillStatusUnpaid  = "Unpaid"
	BillStatusPartial = "Partial"
	BillStatusOverdue = "Overdue"
	BillStatusPaid    = "Paid"
)

// Bill is a charge record for a customer's metered consumption. Each meter
// reading is billed at most once (reading_id is unique on the bills table).
type Bill struct {
	BillID               string    `json:"BillID"`
	CustomerID           string    `json:"CustomerID"`
	MeterID              string    `json:"MeterID"`
	ReadingID            int64     `json:"ReadingID"`
	BillDate             string    `json:"BillDate"`
	DueDate              string    `json:"DueDate"`
	PreviousReadingValue Decimal   `json:"PreviousReadingValue"`
	CurrentReadingValue  Decimal   `json:"CurrentReadingValue"`
	AmountDue            Decimal   `json:"AmountDue"`
	Status               string    `json:"Status"`
	CreatedAt            time.Time `json:"CreatedAt"`
	UpdatedAt            time.Time `json:"UpdatedAt"`
	// Computed fields
	CustomerName *string `json:"CustomerName,omitempty"`
	Paid         Decimal `json:"Paid"`    // sum of recorded payments
	Balance      Decimal `json:"Balance"` // amount due - paid
}

// OutstandingBill is a row of the cashier's outstanding-bills listing.
type OutstandingBill struct {
	BillID       string  `json:"BillID"`
	CustomerID   string  `json:"CustomerID"`
	CustomerName string  `json:"CustomerName"`
	BillDate     string  `json:"BillDate"`
	DueDate      string  `json:"DueDate"`
	AmountDue    Decimal `json:"AmountDue"`
}

// GenerateBillInput is the request body for creating a bill from a reading.
// Field names are kebab-case for wire compatibility with existing clients;
// the customer-name key carries the CustomerID.
type GenerateBillInput struct {
	ReadingID       int64   `json:"reading-id"`
	CustomerID      string  `json:"customer-name"`
	MeterID         string  `json:"meter-id"`
	BillDate        string  `json:"bill-date"`
	DueDate         string  `json:"due-date"`
	PreviousReading Decimal `json:"previous-reading"`
	CurrentReading  Decimal `json:"current-reading"`
	AmountDue       Decimal `json:"amount-due"`
}

func (g *GenerateBillInput) Validate() string {
	if g.ReadingID <= 0 {
		return "reading-id is required"
	}
	if g.CustomerID == "" {
		return "customer-name is required"
	}
	if g.MeterID == "" {
		return "meter-id is required"
	}
	for _, f := range []struct{ name, value string }{
		{"bill-date", g.BillDate},
		{"due-date", g.DueDate},
	} {
		if f.value == "" {
			return f.name + " is required"
		}
		if _, err := time.Parse("2006-01-02", f.value); err != nil {
			return f.name + " must be a date in YYYY-MM-DD format"
		}
	}
	if g.PreviousReading < 0 {
		return "previous-reading must be non-negative"
	}
	if g.CurrentReading < g.PreviousReading {
		return "current-reading must not be less than previous-reading"
	}
	if g.AmountDue < 0 {
		return "amount-due must be non-negative"
	}
	return ""
}
