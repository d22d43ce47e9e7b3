package service

import (
	"testing"
	"time"

	"golang-stock-alert/internal/alerter/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKSTMarketHours(t *testing.T) *MarketHours {
	t.Helper()
	hours, err := NewMarketHours(config.Market{
		Timezone:  "Asia/Seoul",
		OpenTime:  "09:00",
		CloseTime: "15:30",
	})
	require.NoError(t, err)
	return hours
}

func TestMarketHoursIsOpen(t *testing.T) {
	hours := newKSTMarketHours(t)
	kst := hours.Location()

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		// 2026-08-28 is a Friday, 2026-08-29 a Saturday.
		{"weekday mid-session", time.Date(2026, 8, 28, 11, 0, 0, 0, kst), true},
		{"weekday just after open", time.Date(2026, 8, 28, 9, 1, 0, 0, kst), true},
		{"weekday just before close", time.Date(2026, 8, 28, 15, 29, 0, 0, kst), true},
		{"exactly at open", time.Date(2026, 8, 28, 9, 0, 0, 0, kst), false},
		{"exactly at close", time.Date(2026, 8, 28, 15, 30, 0, 0, kst), false},
		{"before open", time.Date(2026, 8, 28, 8, 30, 0, 0, kst), false},
		{"after close", time.Date(2026, 8, 28, 16, 0, 0, 0, kst), false},
		{"saturday mid-session", time.Date(2026, 8, 29, 11, 0, 0, 0, kst), false},
		{"sunday mid-session", time.Date(2026, 8, 30, 11, 0, 0, 0, kst), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hours.IsOpen(tt.at))
		})
	}
}

func TestMarketHoursConvertsToMarketTimezone(t *testing.T) {
	hours := newKSTMarketHours(t)

	// 02:00 UTC is 11:00 KST on the same weekday.
	assert.True(t, hours.IsOpen(time.Date(2026, 8, 28, 2, 0, 0, 0, time.UTC)))
	// 11:00 UTC is 20:00 KST, after close.
	assert.False(t, hours.IsOpen(time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC)))
}

func TestNewMarketHoursValidation(t *testing.T) {
	t.Run("bad timezone", func(t *testing.T) {
		_, err := NewMarketHours(config.Market{Timezone: "Mars/Olympus", OpenTime: "09:00", CloseTime: "15:30"})
		assert.Error(t, err)
	})

	t.Run("bad time layout", func(t *testing.T) {
		_, err := NewMarketHours(config.Market{Timezone: "Asia/Seoul", OpenTime: "9am", CloseTime: "15:30"})
		assert.Error(t, err)
	})

	t.Run("open after close", func(t *testing.T) {
		_, err := NewMarketHours(config.Market{Timezone: "Asia/Seoul", OpenTime: "16:00", CloseTime: "15:30"})
		assert.Error(t, err)
	})
}
