package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// scale is the number of fractional digits every amount is rounded to.
const scale = 2

// DefaultCurrency is the suffix used by String. All amounts in the system
// share one currency.
const DefaultCurrency = "SEK"

// Money is an immutable monetary amount held at two fractional digits.
// Every constructor and arithmetic operation rescales the result with
// half-up rounding, so two amounts are equal iff their rounded values match.
type Money struct {
	value decimal.Decimal
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{value: decimal.Zero.Round(scale)}
}

// FromDecimal builds an amount from a decimal value, rescaled to two digits.
func FromDecimal(d decimal.Decimal) Money {
	return Money{value: d.Round(scale)}
}

// FromFloat builds an amount from a floating point literal.
func FromFloat(f float64) Money {
	return FromDecimal(decimal.NewFromFloat(f))
}

// Parse builds an amount from a decimal string such as "49.60".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("money: parse %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// MustParse is Parse that panics on malformed input. Intended for literals
// in seed data and tests.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return FromDecimal(m.value.Add(other.value))
}

// Sub returns this amount minus the other. The result may be negative.
func (m Money) Sub(other Money) Money {
	return FromDecimal(m.value.Sub(other.value))
}

// Mul scales the amount by a dimensionless factor such as a VAT or discount
// rate. Multiplying money by money is not a meaningful operation and is
// deliberately not provided.
func (m Money) Mul(factor float64) Money {
	return FromDecimal(m.value.Mul(decimal.NewFromFloat(factor)))
}

// MulInt scales the amount by an integer quantity.
func (m Money) MulInt(qty int) Money {
	return FromDecimal(m.value.Mul(decimal.NewFromInt(int64(qty))))
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

// Equal reports whether both amounts have the same rounded value.
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

// GreaterThan reports whether this amount exceeds the other.
func (m Money) GreaterThan(other Money) bool {
	return m.value.GreaterThan(other.value)
}

// LessThan reports whether this amount is below the other.
func (m Money) LessThan(other Money) bool {
	return m.value.LessThan(other.value)
}

// Decimal exposes the underlying rounded decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Amount renders the bare value with two fractional digits, no currency.
func (m Money) Amount() string {
	return m.value.StringFixed(scale)
}

// String renders the amount with two fractional digits and the currency
// suffix, e.g. "49.60 SEK".
func (m Money) String() string {
	return m.Amount() + " " + DefaultCurrency
}

// MarshalJSON encodes the amount as its fixed two-digit string so API
// clients never see float artefacts.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Amount() + `"`), nil
}

// UnmarshalJSON decodes either a quoted decimal string or a bare number.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Sum adds up the provided amounts.
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
