package entity

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a non-negative monetary amount with value semantics.
type Price struct {
	value decimal.Decimal
}

// ZeroPrice is a price of zero.
var ZeroPrice = Price{value: decimal.Zero}

// NewPrice creates a Price from a decimal amount.
func NewPrice(value decimal.Decimal) (Price, error) {
	if value.IsNegative() {
		return Price{}, fmt.Errorf("%w: got %s", ErrInvalidPrice, value)
	}
	return Price{value: value}, nil
}

// NewPriceFromString creates a Price from a decimal string.
func NewPriceFromString(value string) (Price, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}
	return NewPrice(d)
}

// Decimal returns the underlying decimal amount.
func (p Price) Decimal() decimal.Decimal {
	return p.value
}

// IsHigherThan reports whether p is strictly greater than other.
func (p Price) IsHigherThan(other Price) bool {
	return p.value.GreaterThan(other.value)
}

// IsLowerThan reports whether p is strictly less than other.
func (p Price) IsLowerThan(other Price) bool {
	return p.value.LessThan(other.value)
}

// Equal reports value equality.
func (p Price) Equal(other Price) bool {
	return p.value.Equal(other.value)
}

// IsZero reports whether the price is zero.
func (p Price) IsZero() bool {
	return p.value.IsZero()
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{value: p.value.Add(other.value)}
}

// Sub returns the signed difference between two prices.
// The result is a plain decimal since deltas may be negative.
func (p Price) Sub(other Price) decimal.Decimal {
	return p.value.Sub(other.value)
}

func (p Price) String() string {
	return p.value.String()
}

// Value implements driver.Valuer so Price maps to a numeric column.
func (p Price) Value() (driver.Value, error) {
	return p.value.Value()
}

// Scan implements sql.Scanner.
func (p *Price) Scan(src interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return err
	}
	p.value = d
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	return p.value.UnmarshalJSON(data)
}
