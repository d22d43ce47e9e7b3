package config

import (
	"golang-stock-alert/pkg/config"
)

// Monitoring holds the cadence of the two monitoring cycles.
type Monitoring struct {
	PriceRefreshInterval string `mapstructure:"price_refresh_interval"`
	AlertCheckInterval   string `mapstructure:"alert_check_interval"`
}

// Market holds the trading-hours window used to gate monitoring cycles.
type Market struct {
	Timezone  string `mapstructure:"timezone"`
	OpenTime  string `mapstructure:"open_time"`
	CloseTime string `mapstructure:"close_time"`
}

// Quote holds the upstream market-data source configuration.
type Quote struct {
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	Timeout             string `mapstructure:"timeout"`
	CacheTTL            string `mapstructure:"cache_ttl"`
}

// Config holds the full configuration for the alert service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	Telegram   config.Telegram `mapstructure:"telegram"`
	Monitoring Monitoring      `mapstructure:"monitoring"`
	Market     Market          `mapstructure:"market"`
	Quote      Quote           `mapstructure:"quote"`
}

// Load loads the alert service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
