package service

import (
	"fmt"
	"time"

	"golang-stock-alert/internal/alerter/config"
)

// MarketHours is the weekday/time-of-day predicate gating monitoring
// cycles. A cycle runs only on weekdays, strictly between the configured
// open and close times in the market timezone.
type MarketHours struct {
	location    *time.Location
	openMinute  int
	closeMinute int
}

// NewMarketHours builds the gate from configuration. Times use the
// "15:04" layout.
func NewMarketHours(cfg config.Market) (*MarketHours, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid market timezone: %w", err)
	}

	openMinute, err := parseMinuteOfDay(cfg.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("invalid market open_time: %w", err)
	}
	closeMinute, err := parseMinuteOfDay(cfg.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("invalid market close_time: %w", err)
	}
	if openMinute >= closeMinute {
		return nil, fmt.Errorf("market open_time %s must be before close_time %s", cfg.OpenTime, cfg.CloseTime)
	}

	return &MarketHours{
		location:    location,
		openMinute:  openMinute,
		closeMinute: closeMinute,
	}, nil
}

// IsOpen reports whether the market is open at the given instant.
func (m *MarketHours) IsOpen(t time.Time) bool {
	local := t.In(m.location)

	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	minute := local.Hour()*60 + local.Minute()
	return minute > m.openMinute && minute < m.closeMinute
}

// Location returns the market timezone.
func (m *MarketHours) Location() *time.Location {
	return m.location
}

func parseMinuteOfDay(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
