package models

// Tariff is one rate tier of a utility's schedule. Non-electricity amounts
// are priced as rate x consumption using the tier with the lowest MinUnits;
// tier proration is deliberately not applied.
type Tariff struct {
	TariffID  int64   `json:"TariffID"`
	UtilityID string  `json:"UtilityID"`
	MinUnits  float64 `json:"MinUnits"`
	Rate      float64 `json:"Rate"`
}

// Domestic electricity block schedule. Each block is charged at its own
// per-unit rate; the final block is open-ended.
var electricityBlocks = []struct {
	units float64
	rate  float64
}{
	{60, 7.85},
	{30, 10.00},
	{90, 27.75},
	{0, 32.00},
}

// ElectricityAmount prices electricity consumption across the block
// schedule. Non-positive consumption yields 0.
func ElectricityAmount(consumption float64) float64 {
	if consumption <= 0 {
		return 0
	}
	remaining := consumption
	var amount float64
	for _, b := range electricityBlocks {
		if b.units == 0 || remaining <= b.units {
			amount += remaining * b.rate
			break
		}
		amount += b.units * b.rate
		remaining -= b.units
	}
	return Round2(amount)
}
