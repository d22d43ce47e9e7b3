package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceChangeKind identifies the classification of a price update.
type PriceChangeKind string

const (
	PriceChangeNone    PriceChangeKind = "NONE"
	PriceChangeNewHigh PriceChangeKind = "NEW_HIGH"
	PriceChangeSurge   PriceChangeKind = "SURGE"
	PriceChangeFall    PriceChangeKind = "FALL"
)

// PriceChangeEvent is the result of a single price update. Exactly one
// kind is set per update; None is an explicit outcome rather than a nil
// event so callers can switch exhaustively.
type PriceChangeEvent struct {
	Kind       PriceChangeKind
	OldPrice   Price
	NewPrice   Price
	ChangeRate decimal.Decimal // percent; meaningful for Surge and Fall only
	OccurredAt time.Time
}

// IsNone reports whether the update produced no event.
func (e PriceChangeEvent) IsNone() bool {
	return e.Kind == PriceChangeNone
}

// NewHighEvent builds a new-high classification.
func NewHighEvent(oldPrice, newPrice Price) PriceChangeEvent {
	return PriceChangeEvent{
		Kind:       PriceChangeNewHigh,
		OldPrice:   oldPrice,
		NewPrice:   newPrice,
		OccurredAt: time.Now(),
	}
}

// SurgeEvent builds a surge classification with its percentage change.
func SurgeEvent(oldPrice, newPrice Price, changeRate decimal.Decimal) PriceChangeEvent {
	return PriceChangeEvent{
		Kind:       PriceChangeSurge,
		OldPrice:   oldPrice,
		NewPrice:   newPrice,
		ChangeRate: changeRate,
		OccurredAt: time.Now(),
	}
}

// FallEvent builds a fall classification with its percentage change.
func FallEvent(oldPrice, newPrice Price, changeRate decimal.Decimal) PriceChangeEvent {
	return PriceChangeEvent{
		Kind:       PriceChangeFall,
		OldPrice:   oldPrice,
		NewPrice:   newPrice,
		ChangeRate: changeRate,
		OccurredAt: time.Now(),
	}
}

// NoChangeEvent builds the explicit no-event outcome.
func NoChangeEvent(oldPrice, newPrice Price) PriceChangeEvent {
	return PriceChangeEvent{
		Kind:       PriceChangeNone,
		OldPrice:   oldPrice,
		NewPrice:   newPrice,
		OccurredAt: time.Now(),
	}
}
