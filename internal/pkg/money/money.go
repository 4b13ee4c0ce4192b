// Package money represents monetary amounts as integer cents. Amounts
// cross the JSON boundary as decimal dollars; arithmetic never touches
// floating point except at that boundary.
package money

import (
	"encoding/json"
	"math"

	"oasis-backend/internal/pkg/errs"
)

type Money struct {
	cents int64
}

func Zero() Money {
	return Money{}
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// FromDollars converts a decimal dollar amount, rounding half away from
// zero to the nearest cent.
func FromDollars(dollars float64) Money {
	return Money{cents: int64(math.Round(dollars * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) MulQty(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

func (m Money) Equal(other Money) bool {
	return m.cents == other.cents
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Dollars())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var dollars float64
	if err := json.Unmarshal(data, &dollars); err != nil {
		return errs.Wrap(err, "invalid money value")
	}
	*m = FromDollars(dollars)
	return nil
}
