package models

// ElectricityUtilityID identifies the electricity utility, whose amounts due
// are computed by the block-rate schedule instead of a flat tariff rate.
const ElectricityUtilityID = "UTIL-01"

// Utility represents a metered utility (electricity, water, ...).
type Utility struct {
	UtilityID   string `json:"UtilityID"`
	UtilityName string `json:"UtilityName"`
}

// Meter represents a consumption meter installed for a customer.
type Meter struct {
	MeterID    string `json:"MeterID"`
	CustomerID string `json:"CustomerID"`
	UtilityID  string `json:"UtilityID"`
}
