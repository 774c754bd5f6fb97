package models

import "time"

// Payment is a recorded payment against a bill.
type Payment struct {
	PaymentID     int64     `json:"PaymentID"`
	BillID        string    `json:"BillID"`
	UserID        string    `json:"UserID"` // cashier who recorded the payment
	PaymentAmount Decimal   `json:"PaymentAmount"`
	PaymentMethod string    `json:"PaymentMethod"`
	PaymentDate   time.Time `json:"PaymentDate"`
}

// RecordPaymentInput is the request body for recording a payment. Field
// names are kebab-case for wire compatibility with existing clients.
type RecordPaymentInput struct {
	BillID        string  `json:"bill-id"`
	PaymentAmount Decimal `json:"payment-amount"`
	PaymentMethod string  `json:"payment-method"`
}

func (p *RecordPaymentInput) Validate() string {
	if p.BillID == "" {
		return "bill-id is required"
	}
	if p.PaymentAmount <= 0 {
		return "payment-amount must be positive"
	}
	if p.PaymentMethod == "" {
		return "payment-method is required"
	}
	return ""
}
