package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	surgeThreshold = decimal.NewFromFloat(5.0)
	fallThreshold  = decimal.NewFromFloat(-3.0)
	hundred        = decimal.NewFromInt(100)
)

// changeRateScale keeps enough fractional digits that rounding cannot
// move a rate across the surge/fall boundaries.
const changeRateScale = 10

// Stock is a tradable instrument with its current and historical highest price.
type Stock struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Code         string         `gorm:"column:stock_code;uniqueIndex:uk_stock_code;not null" json:"stock_code"`
	Name         string         `gorm:"column:stock_name;not null" json:"stock_name"`
	MarketType   string         `gorm:"column:market_type" json:"market_type"`
	CurrentPrice Price          `gorm:"column:current_price;type:numeric(18,4);not null" json:"current_price"`
	HighestPrice Price          `gorm:"column:highest_price;type:numeric(18,4);not null" json:"highest_price"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Stock) TableName() string {
	return "stocks"
}

// UpdatePrice sets the current price and classifies the movement.
// A new historical high wins over surge/fall classification; otherwise the
// percentage change against the previous price decides. The current price
// is updated regardless of the outcome, and the highest price only ever
// ratchets upward.
func (s *Stock) UpdatePrice(newPrice Price) PriceChangeEvent {
	oldPrice := s.CurrentPrice
	s.CurrentPrice = newPrice

	if newPrice.IsHigherThan(s.HighestPrice) {
		s.HighestPrice = newPrice
		return NewHighEvent(oldPrice, newPrice)
	}

	// A zero previous price leaves the change rate undefined; skip
	// surge/fall classification for that tick.
	if oldPrice.IsZero() {
		return NoChangeEvent(oldPrice, newPrice)
	}

	changeRate := newPrice.Sub(oldPrice).
		DivRound(oldPrice.Decimal(), changeRateScale).
		Mul(hundred)

	switch {
	case changeRate.GreaterThanOrEqual(surgeThreshold):
		return SurgeEvent(oldPrice, newPrice, changeRate)
	case changeRate.LessThanOrEqual(fallThreshold):
		return FallEvent(oldPrice, newPrice, changeRate)
	default:
		return NoChangeEvent(oldPrice, newPrice)
	}
}
