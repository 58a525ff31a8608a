package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers, as the intake form sends them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Percent is a percentage in the range the caller chooses to allow.
// It decodes from a JSON number, a numeric string, or a string with a
// trailing percent sign ("10%").
type Percent struct {
	decimal.Decimal
}

func NewPercent(v int64) Percent {
	return Percent{Decimal: decimal.NewFromInt(v)}
}

// ParsePercent parses "10", "10%" or "12.5 %". An empty string is zero.
func ParsePercent(s string) (Percent, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return Percent{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, fmt.Errorf("invalid percentage %q", s)
	}
	return Percent{Decimal: d}, nil
}

// Fraction returns the percentage as a factor, 10% -> 0.1.
func (p Percent) Fraction() decimal.Decimal {
	return p.Decimal.Div(decimal.NewFromInt(100))
}

func (p Percent) String() string {
	return p.Decimal.String() + "%"
}

func (p *Percent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Percent{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParsePercent(s)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}
	return p.Decimal.UnmarshalJSON(data)
}
