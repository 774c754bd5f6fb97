package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalUnmarshal(t *testing.T) {
	type payload struct {
		Amount Decimal `json:"amount"`
	}

	testCases := []struct {
		name    string
		input   string
		want    Decimal
		wantErr bool
	}{
		{"number", `{"amount": 123.45}`, 123.45, false},
		{"integer number", `{"amount": 250}`, 250, false},
		{"numeric string", `{"amount": "123.45"}`, 123.45, false},
		{"integer string", `{"amount": "42"}`, 42, false},
		{"negative number", `{"amount": -1.5}`, -1.5, false},
		{"alphabetic string", `{"amount": "abc"}`, 0, true},
		{"empty string", `{"amount": ""}`, 0, true},
		{"null", `{"amount": null}`, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			err := json.Unmarshal([]byte(tc.input), &p)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Amount)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 5.68, Round2(5.678))
	assert.Equal(t, 100.0, Round2(100))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 250.0, Round2(50*5.0))
}
