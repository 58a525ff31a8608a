package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Number", input: `10`, want: "10"},
		{name: "Fractional number", input: `12.5`, want: "12.5"},
		{name: "Numeric string", input: `"10"`, want: "10"},
		{name: "Percent sign", input: `"10%"`, want: "10"},
		{name: "Percent sign with space", input: `"12.5 %"`, want: "12.5"},
		{name: "Empty string", input: `""`, want: "0"},
		{name: "Null", input: `null`, want: "0"},
		{name: "Invalid", input: `"abc"`, wantErr: true},
		{name: "Boolean", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPercent(99)
			err := json.Unmarshal([]byte(tt.input), &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, p.Equal(decimal.RequireFromString(tt.want)), "got %s", p)
		})
	}
}

func TestPercent_Fraction(t *testing.T) {
	p, err := ParsePercent("10%")
	require.NoError(t, err)

	assert.True(t, p.Fraction().Equal(decimal.RequireFromString("0.1")))
	assert.Equal(t, "10%", p.String())
	assert.True(t, Percent{}.Fraction().IsZero())
}

func TestDecimal_MarshalsAsNumber(t *testing.T) {
	data, err := json.Marshal(map[string]decimal.Decimal{"total": decimal.RequireFromString("85.44")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":85.44}`, string(data))
}
