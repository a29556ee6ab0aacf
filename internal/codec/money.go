// Package codec maps domain value types onto the text columns the storage
// layer uses. Every type here implements driver.Valuer and sql.Scanner so the
// repositories can pass values straight to database/sql; encode followed by
// decode always returns the original value.
package codec

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits every stored amount carries.
const moneyScale = 2

// Money is a currency amount. It wraps an arbitrary-precision decimal so
// totals never accumulate binary floating-point error, and it is stored as a
// fixed two-decimal string.
type Money struct {
	dec decimal.Decimal
}

// NewMoney rounds d to the money scale, half away from zero.
func NewMoney(d decimal.Decimal) Money {
	return Money{dec: d.Round(moneyScale)}
}

// MoneyFromString parses a decimal string such as "3.99".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrMalformedDecimal, s)
	}
	return NewMoney(d), nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal { return m.dec }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.dec.IsNegative() }

// Add returns m + other at the money scale.
func (m Money) Add(other Money) Money {
	return Money{dec: m.dec.Add(other.dec)}
}

// Mul multiplies the amount by factor and rounds back to the money scale.
func (m Money) Mul(factor decimal.Decimal) Money {
	return NewMoney(m.dec.Mul(factor))
}

func (m Money) Equal(other Money) bool { return m.dec.Equal(other.dec) }

// String renders the canonical stored form, always with two fractional
// digits.
func (m Money) String() string { return m.dec.StringFixed(moneyScale) }

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements sql.Scanner. Only the textual forms the schema stores are
// accepted; anything else is malformed data.
func (m *Money) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrMalformedDecimal, src)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedDecimal, s)
	}
	m.dec = d
	return nil
}
