package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, value string) Price {
	t.Helper()
	p, err := NewPriceFromString(value)
	require.NoError(t, err)
	return p
}

func TestNewPrice(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		for _, v := range []string{"0", "0.0001", "10000", "99999999.9999"} {
			p, err := NewPriceFromString(v)
			require.NoError(t, err)
			assert.True(t, p.Decimal().Equal(decimal.RequireFromString(v)))
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := NewPrice(decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = NewPriceFromString("-0.0001")
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestPriceComparisons(t *testing.T) {
	low := mustPrice(t, "10000")
	high := mustPrice(t, "10001")

	assert.True(t, high.IsHigherThan(low))
	assert.False(t, low.IsHigherThan(high))
	assert.False(t, high.IsHigherThan(high))

	assert.True(t, low.IsLowerThan(high))
	assert.False(t, high.IsLowerThan(low))
	assert.False(t, low.IsLowerThan(low))

	assert.True(t, low.Equal(mustPrice(t, "10000")))
	assert.True(t, low.Equal(mustPrice(t, "10000.00")))
}

func TestPriceArithmetic(t *testing.T) {
	a := mustPrice(t, "10000")
	b := mustPrice(t, "2500.50")

	sum := a.Add(b)
	assert.True(t, sum.Equal(mustPrice(t, "12500.50")))

	// Subtraction yields a signed delta, not a Price.
	delta := b.Sub(a)
	assert.True(t, delta.Equal(decimal.RequireFromString("-7499.50")))
	assert.True(t, a.Sub(b).Equal(decimal.RequireFromString("7499.50")))

	// Operands are untouched.
	assert.True(t, a.Equal(mustPrice(t, "10000")))
	assert.True(t, b.Equal(mustPrice(t, "2500.50")))
}
