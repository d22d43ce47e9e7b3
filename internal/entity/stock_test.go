package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestStock(t *testing.T, currentPrice, highestPrice string) *Stock {
	t.Helper()
	return &Stock{
		ID:           1,
		Code:         "005930",
		Name:         "Samsung Electronics",
		MarketType:   "KOSPI",
		CurrentPrice: mustPrice(t, currentPrice),
		HighestPrice: mustPrice(t, highestPrice),
	}
}

func TestUpdatePrice_NoEventOnSmallMove(t *testing.T) {
	stock := newTestStock(t, "10000", "12000")

	// 2% up, below the surge threshold and below the high.
	event := stock.UpdatePrice(mustPrice(t, "10200"))

	assert.Equal(t, PriceChangeNone, event.Kind)
	assert.True(t, event.IsNone())
	assert.True(t, stock.CurrentPrice.Equal(mustPrice(t, "10200")))
	assert.True(t, stock.HighestPrice.Equal(mustPrice(t, "12000")))
}

func TestUpdatePrice_Surge(t *testing.T) {
	stock := newTestStock(t, "10000", "12000")

	// 6% up, still below the historical high.
	event := stock.UpdatePrice(mustPrice(t, "10600"))

	assert.Equal(t, PriceChangeSurge, event.Kind)
	assert.True(t, event.ChangeRate.GreaterThanOrEqual(decimal.NewFromFloat(5.0)))
	assert.True(t, event.OldPrice.Equal(mustPrice(t, "10000")))
	assert.True(t, event.NewPrice.Equal(mustPrice(t, "10600")))
	assert.True(t, stock.CurrentPrice.Equal(mustPrice(t, "10600")))
}

func TestUpdatePrice_SurgeBoundaryInclusive(t *testing.T) {
	stock := newTestStock(t, "10000", "12000")

	// Exactly 5% qualifies.
	event := stock.UpdatePrice(mustPrice(t, "10500"))

	assert.Equal(t, PriceChangeSurge, event.Kind)
	assert.True(t, event.ChangeRate.Equal(decimal.NewFromFloat(5.0)))
}

func TestUpdatePrice_Fall(t *testing.T) {
	stock := newTestStock(t, "10000", "12000")

	// 4% down.
	event := stock.UpdatePrice(mustPrice(t, "9600"))

	assert.Equal(t, PriceChangeFall, event.Kind)
	assert.True(t, event.ChangeRate.LessThanOrEqual(decimal.NewFromFloat(-3.0)))
	assert.True(t, stock.CurrentPrice.Equal(mustPrice(t, "9600")))
}

func TestUpdatePrice_FallBoundaryInclusive(t *testing.T) {
	stock := newTestStock(t, "10000", "12000")

	// Exactly -3% qualifies.
	event := stock.UpdatePrice(mustPrice(t, "9700"))

	assert.Equal(t, PriceChangeFall, event.Kind)
	assert.True(t, event.ChangeRate.Equal(decimal.NewFromFloat(-3.0)))
}

func TestUpdatePrice_NewHigh(t *testing.T) {
	stock := newTestStock(t, "10000", "11000")

	event := stock.UpdatePrice(mustPrice(t, "11500"))

	assert.Equal(t, PriceChangeNewHigh, event.Kind)
	assert.True(t, stock.CurrentPrice.Equal(mustPrice(t, "11500")))
	assert.True(t, stock.HighestPrice.Equal(mustPrice(t, "11500")))
}

func TestUpdatePrice_NewHighWinsOverSurge(t *testing.T) {
	stock := newTestStock(t, "10000", "11000")

	// 20% up and above the high: only NewHigh fires.
	event := stock.UpdatePrice(mustPrice(t, "12000"))

	assert.Equal(t, PriceChangeNewHigh, event.Kind)
	assert.True(t, stock.HighestPrice.Equal(mustPrice(t, "12000")))
}

func TestUpdatePrice_Sequence(t *testing.T) {
	stock := newTestStock(t, "10000", "11000")

	event1 := stock.UpdatePrice(mustPrice(t, "10600")) // 6% up, below high
	event2 := stock.UpdatePrice(mustPrice(t, "11200")) // above high
	event3 := stock.UpdatePrice(mustPrice(t, "10800")) // ~3.57% down

	assert.Equal(t, PriceChangeSurge, event1.Kind)
	assert.Equal(t, PriceChangeNewHigh, event2.Kind)
	assert.Equal(t, PriceChangeFall, event3.Kind)
	assert.True(t, stock.CurrentPrice.Equal(mustPrice(t, "10800")))
	assert.True(t, stock.HighestPrice.Equal(mustPrice(t, "11200")))
}

func TestUpdatePrice_HighestPriceNeverDecreases(t *testing.T) {
	stock := newTestStock(t, "10000", "11000")

	stock.UpdatePrice(mustPrice(t, "9000"))
	stock.UpdatePrice(mustPrice(t, "8000"))

	assert.True(t, stock.HighestPrice.Equal(mustPrice(t, "11000")))
}

func TestUpdatePrice_ZeroOldPriceSkipsRateClassification(t *testing.T) {
	stock := newTestStock(t, "0", "11000")

	// The rate against a zero baseline is undefined; no surge/fall fires
	// but the current price still updates.
	event := stock.UpdatePrice(mustPrice(t, "10000"))

	assert.Equal(t, PriceChangeNone, event.Kind)
	assert.True(t, stock.CurrentPrice.Equal(mustPrice(t, "10000")))
}
