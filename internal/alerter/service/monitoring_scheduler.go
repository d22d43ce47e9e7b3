package service

import (
	"context"
	"fmt"
	"time"

	"golang-stock-alert/internal/alerter/config"
	"golang-stock-alert/pkg/logger"

	"github.com/robfig/cron/v3"
)

// MonitoringScheduler runs the two monitoring cycles on independent
// timers, each gated by market hours. Errors from one tick are logged
// and swallowed so the next tick still runs.
type MonitoringScheduler struct {
	monitoringSvc        MonitoringService
	marketHours          *MarketHours
	logger               *logger.Logger
	priceRefreshInterval time.Duration
	alertCheckInterval   time.Duration
}

// NewMonitoringScheduler creates the scheduler for the monitoring cycles.
func NewMonitoringScheduler(cfg config.Monitoring, monitoringSvc MonitoringService, marketHours *MarketHours, log *logger.Logger) (*MonitoringScheduler, error) {
	priceRefreshInterval, err := time.ParseDuration(cfg.PriceRefreshInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid price_refresh_interval: %w", err)
	}
	alertCheckInterval, err := time.ParseDuration(cfg.AlertCheckInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid alert_check_interval: %w", err)
	}

	return &MonitoringScheduler{
		monitoringSvc:        monitoringSvc,
		marketHours:          marketHours,
		logger:               log,
		priceRefreshInterval: priceRefreshInterval,
		alertCheckInterval:   alertCheckInterval,
	}, nil
}

// Start schedules both cycles and blocks until the context is canceled,
// then waits for any in-flight cycle to finish.
func (s *MonitoringScheduler) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(s.marketHours.Location()))

	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.priceRefreshInterval), s.gated(ctx, "price refresh", s.monitoringSvc.RefreshAllPrices)); err != nil {
		return fmt.Errorf("failed to schedule price refresh: %w", err)
	}
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.alertCheckInterval), s.gated(ctx, "alert evaluation", s.monitoringSvc.EvaluateAlerts)); err != nil {
		return fmt.Errorf("failed to schedule alert evaluation: %w", err)
	}

	s.logger.Info("Monitoring scheduler started",
		logger.StringField("price_refresh_interval", s.priceRefreshInterval.String()),
		logger.StringField("alert_check_interval", s.alertCheckInterval.String()))

	c.Start()

	<-ctx.Done()
	s.logger.Info("Monitoring scheduler stopping")
	<-c.Stop().Done()

	return nil
}

// gated wraps one cycle with the market-hours check and tick-level error
// trapping.
func (s *MonitoringScheduler) gated(ctx context.Context, name string, run func(context.Context) error) func() {
	return func() {
		if !s.marketHours.IsOpen(time.Now()) {
			s.logger.Debug("Market closed, skipping cycle", logger.StringField("cycle", name))
			return
		}

		if err := run(ctx); err != nil {
			s.logger.Error("Monitoring cycle failed",
				logger.ErrorField(err), logger.StringField("cycle", name))
		}
	}
}
