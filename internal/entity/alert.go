package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"golang-stock-alert/pkg/utils"
)

// AlertType classifies what kind of movement an alert watches for.
type AlertType string

const (
	AlertTypeTargetPrice AlertType = "TARGET_PRICE"
	AlertTypeChangeRate  AlertType = "CHANGE_RATE"
	AlertTypeNewHigh     AlertType = "NEW_HIGH_PRICE"
	AlertTypeSurge       AlertType = "SURGE"
	AlertTypeFall        AlertType = "FALL"
)

// Valid reports whether the alert type is one of the known values.
func (t AlertType) Valid() bool {
	switch t {
	case AlertTypeTargetPrice, AlertTypeChangeRate, AlertTypeNewHigh, AlertTypeSurge, AlertTypeFall:
		return true
	}
	return false
}

// AlertStatus is the lifecycle state of an alert.
type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "ACTIVE"
	AlertStatusTriggered AlertStatus = "TRIGGERED"
	AlertStatusDisabled  AlertStatus = "DISABLED"
)

// AlertCondition encodes one of three evaluation modes: a target price
// threshold, a change-rate threshold, or nothing. Which optional field is
// populated decides the mode. It is a pure function of a stock's state.
type AlertCondition struct {
	TargetPrice         *decimal.Decimal `gorm:"column:target_price;type:numeric(18,4)" json:"target_price,omitempty"`
	ChangeRateThreshold *decimal.Decimal `gorm:"column:change_rate_threshold;type:numeric(8,4)" json:"change_rate_threshold,omitempty"`
	IsAbove             bool             `gorm:"column:is_above;default:true" json:"is_above"`
}

// NewAlertCondition builds the condition matching the given alert type.
// Target-price alerts require a non-negative target; change-rate alerts
// require a threshold. The event-driven types (new-high, surge, fall)
// carry an empty condition.
func NewAlertCondition(alertType AlertType, targetPrice, changeRateThreshold *decimal.Decimal, isAbove *bool) (AlertCondition, error) {
	switch alertType {
	case AlertTypeTargetPrice:
		if targetPrice == nil {
			return AlertCondition{}, fmt.Errorf("%w: target price alert requires a target price", ErrInvalidAlertCondition)
		}
		if targetPrice.IsNegative() {
			return AlertCondition{}, fmt.Errorf("%w: target price must be zero or positive", ErrInvalidAlertCondition)
		}
		above := true
		if isAbove != nil {
			above = *isAbove
		}
		return AlertCondition{TargetPrice: targetPrice, IsAbove: above}, nil
	case AlertTypeChangeRate:
		if changeRateThreshold == nil {
			return AlertCondition{}, fmt.Errorf("%w: change rate alert requires a threshold", ErrInvalidAlertCondition)
		}
		return AlertCondition{ChangeRateThreshold: changeRateThreshold, IsAbove: true}, nil
	case AlertTypeNewHigh, AlertTypeSurge, AlertTypeFall:
		return AlertCondition{IsAbove: true}, nil
	default:
		return AlertCondition{}, fmt.Errorf("%w: unknown alert type %q", ErrInvalidAlertCondition, alertType)
	}
}

// IsSatisfied evaluates the condition against the stock's current state.
func (c AlertCondition) IsSatisfied(stock *Stock) bool {
	switch {
	case c.TargetPrice != nil:
		return c.checkTargetPrice(stock.CurrentPrice)
	case c.ChangeRateThreshold != nil:
		return c.checkChangeRate(stock)
	default:
		return false
	}
}

// checkTargetPrice compares inclusively in both directions.
func (c AlertCondition) checkTargetPrice(currentPrice Price) bool {
	if c.IsAbove {
		return currentPrice.Decimal().GreaterThanOrEqual(*c.TargetPrice)
	}
	return currentPrice.Decimal().LessThanOrEqual(*c.TargetPrice)
}

// checkChangeRate always returns false. Comparing against a rate needs a
// previous-tick baseline that Stock no longer holds once UpdatePrice has
// overwritten the current price; until such a baseline is threaded in,
// change-rate alerts never fire.
func (c AlertCondition) checkChangeRate(stock *Stock) bool {
	return false
}

// Alert binds a condition to a stock on behalf of a user and owns its
// lifecycle: Active on creation, Triggered by the monitoring cycle,
// Disabled by the user.
type Alert struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	StockID     uint           `gorm:"column:stock_id;not null" json:"stock_id"`
	UserID      uint           `gorm:"column:user_id;not null" json:"user_id"`
	AlertType   AlertType      `gorm:"column:alert_type;not null" json:"alert_type"`
	Condition   AlertCondition `gorm:"embedded" json:"condition"`
	Status      AlertStatus    `gorm:"column:status;not null;default:ACTIVE" json:"status"`
	TriggeredAt *time.Time     `gorm:"column:triggered_at" json:"triggered_at,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Alert) TableName() string {
	return "alerts"
}

// NewAlert creates an Active alert for the given stock and user.
func NewAlert(stockID, userID uint, alertType AlertType, condition AlertCondition) *Alert {
	return &Alert{
		StockID:   stockID,
		UserID:    userID,
		AlertType: alertType,
		Condition: condition,
		Status:    AlertStatusActive,
	}
}

// CheckCondition evaluates the alert's condition against the stock
// without mutating the alert.
func (a *Alert) CheckCondition(stock *Stock) bool {
	return a.Condition.IsSatisfied(stock)
}

// Trigger marks the alert as triggered and stamps the trigger time.
// There is no internal state guard; callers filter by Active status
// before evaluating.
func (a *Alert) Trigger() {
	a.Status = AlertStatusTriggered
	a.TriggeredAt = utils.ToPointer(utils.TimeNowKST())
}

// Disable marks the alert as disabled. A previous trigger timestamp is
// preserved, not cleared.
func (a *Alert) Disable() {
	a.Status = AlertStatusDisabled
}

// IsActive reports whether the alert participates in monitoring cycles.
func (a *Alert) IsActive() bool {
	return a.Status == AlertStatusActive
}

// BelongsTo reports whether the alert is owned by the given user.
func (a *Alert) BelongsTo(userID uint) bool {
	return a.UserID == userID
}
