package models

import (
	"fmt"
	"math"
	"strconv"
)

// Decimal is a monetary or meter-reading amount carried on the wire as a
// JSON number or a numeric string. Form-originated clients send amounts as
// strings, so both encodings are accepted; anything else is rejected at
// decode time.
type Decimal float64

func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		return fmt.Errorf("empty decimal value")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("malformed decimal value %q", s)
	}
	*d = Decimal(f)
	return nil
}

// Round2 rounds to two decimal places, the precision amounts are stored at.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
