package inventory

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when none is configured.
const DefaultCurrency = "USD"

// Price is a fixed-point unit price or amount.
type Price struct {
	value decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// P returns a Price for the given value.
func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

// ParsePrice parses a decimal number like "2.50".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{value: d}, nil
}

// Fraction returns the number of decimal digits of the currency, 2 for unknown currencies.
func Fraction(currency string) int {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return 2
	}
	return cur.Fraction
}

// KnownCurrency reports whether the ISO 4217 code is known.
func KnownCurrency(currency string) bool { return money.GetCurrency(currency) != nil }

func (p Price) Add(q Price) Price           { return Price{value: p.value.Add(q.value)} }
func (p Price) Sub(q Price) Price           { return Price{value: p.value.Sub(q.value)} }
func (p Price) Mul(quantity int) Price      { return Price{value: p.value.Mul(decimal.NewFromInt(int64(quantity)))} }
func (p Price) Equal(q Price) bool          { return p.value.Equal(q.value) }
func (p Price) IsZero() bool                { return p.value.IsZero() }
func (p Price) IsNegative() bool            { return p.value.IsNegative() }
func (p Price) Decimal() decimal.Decimal    { return p.value }
func (p Price) InexactFloat64() float64     { return p.value.InexactFloat64() }
func (p Price) Round(currency string) Price { return Price{value: p.value.Round(int32(Fraction(currency)))} }

// priceDecimals is the number of decimals printed in listings and snapshots.
const priceDecimals = 2

// String returns the price with two decimals, as printed in listings and snapshots.
func (p Price) String() string { return p.value.StringFixed(priceDecimals) }

// StringIn returns the price with the currency's number of decimals.
func (p Price) StringIn(currency string) string { return p.value.StringFixed(int32(Fraction(currency))) }

// MarshalJSON writes the price as a bare JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.value.String()), nil
}

// UnmarshalJSON accepts both a JSON number and a quoted number.
func (p *Price) UnmarshalJSON(b []byte) error {
	return p.value.UnmarshalJSON(b)
}
