package models

// UnbilledReading is a meter reading that has no bill yet, with the owning
// customer resolved through the meter.
type UnbilledReading struct {
	ReadingID  int64  `json:"ReadingID"`
	MeterID    string `json:"MeterID"`
	CustomerID string `json:"CustomerID"`
}

// ReadingDetail is a single reading with its previous same-meter reading
// resolved, consumption derived, and the amount due computed by the meter's
// utility rule. PreviousReadingValue is 0 for the first reading of a meter.
type ReadingDetail struct {
	MeterID              string  `json:"MeterID"`
	CurrentReadingValue  Decimal `json:"CurrentReadingValue"`
	PreviousReadingValue Decimal `json:"PreviousReadingValue"`
	Consumption          Decimal `json:"Consumption"`
	CalculatedAmountDue  Decimal `json:"CalculatedAmountDue"`
	CustomerID           string  `json:"CustomerID"`
}
