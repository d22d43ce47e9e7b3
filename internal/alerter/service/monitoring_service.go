package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang-stock-alert/internal/alerter/repository"
	"golang-stock-alert/internal/entity"
	"golang-stock-alert/pkg/common"
	"golang-stock-alert/pkg/logger"
	redisPkg "golang-stock-alert/pkg/redis"
	"golang-stock-alert/pkg/telegram"
	"golang-stock-alert/pkg/utils"
)

// lastPriceTTL bounds how long an observed price stays in Redis.
const lastPriceTTL = time.Hour

// MonitoringService drives the two monitoring cycles: bulk price refresh
// and evaluation of active alerts.
type MonitoringService interface {
	RefreshAllPrices(ctx context.Context) error
	EvaluateAlerts(ctx context.Context) error
	RefreshSinglePrice(ctx context.Context, stockCode string) (*entity.Stock, error)
}

// NewMonitoringService creates a new monitoring service.
func NewMonitoringService(
	stockRepo repository.StockRepository,
	alertRepo repository.AlertRepository,
	quoteRepo repository.QuoteRepository,
	notificationRepo repository.NotificationRepository,
	notifier telegram.Notifier,
	redisClient *redisPkg.Client,
	log *logger.Logger,
) MonitoringService {
	return &monitoringService{
		stockRepo:        stockRepo,
		alertRepo:        alertRepo,
		quoteRepo:        quoteRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		redisClient:      redisClient,
		logger:           log,
	}
}

type monitoringService struct {
	stockRepo        repository.StockRepository
	alertRepo        repository.AlertRepository
	quoteRepo        repository.QuoteRepository
	notificationRepo repository.NotificationRepository
	notifier         telegram.Notifier
	redisClient      *redisPkg.Client
	logger           *logger.Logger
}

// RefreshAllPrices fetches quotes for every tracked stock in one batched
// call and applies the price update to each stock the source returned a
// price for. Stocks missing from the response are skipped for this
// cycle. A failed batch fetch abandons the cycle; the next scheduled
// tick is the retry.
func (s *monitoringService) RefreshAllPrices(ctx context.Context) error {
	stocks, err := s.stockRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stocks: %w", err)
	}
	if len(stocks) == 0 {
		return nil
	}

	codes := make([]string, 0, len(stocks))
	for _, stock := range stocks {
		codes = append(codes, stock.Code)
	}

	prices, err := s.quoteRepo.GetCurrentPrices(ctx, codes)
	if err != nil {
		return fmt.Errorf("failed to fetch quotes: %w", err)
	}

	updated := 0
	for i := range stocks {
		price, ok := prices[stocks[i].Code]
		if !ok {
			s.logger.DebugContext(ctx, "No quote returned, skipping stock",
				logger.StringField("stock_code", stocks[i].Code))
			continue
		}

		event := stocks[i].UpdatePrice(price)
		updated++

		if !event.IsNone() {
			s.logger.InfoContext(ctx, "Price change event",
				logger.StringField("stock_code", stocks[i].Code),
				logger.StringField("kind", string(event.Kind)),
				logger.StringField("old_price", event.OldPrice.String()),
				logger.StringField("new_price", event.NewPrice.String()))
		}

		s.cacheLastPrice(ctx, stocks[i].Code, price)
	}

	if err := s.stockRepo.SaveAll(ctx, stocks); err != nil {
		return fmt.Errorf("failed to persist stocks: %w", err)
	}

	s.logger.InfoContext(ctx, "Price refresh completed",
		logger.IntField("total", len(stocks)), logger.IntField("updated", updated))

	return nil
}

// EvaluateAlerts checks every active alert against its stock's current
// state, notifying and triggering the satisfied ones. One alert failing
// to notify or persist does not abort the rest.
func (s *monitoringService) EvaluateAlerts(ctx context.Context) error {
	alerts, err := s.alertRepo.FindActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active alerts: %w", err)
	}

	triggered := 0
	for i := range alerts {
		if s.evaluateAlert(ctx, &alerts[i]) {
			triggered++
		}
	}

	s.logger.InfoContext(ctx, "Alert evaluation completed",
		logger.IntField("checked", len(alerts)), logger.IntField("triggered", triggered))

	return nil
}

func (s *monitoringService) evaluateAlert(ctx context.Context, alert *entity.Alert) bool {
	stock, err := s.stockRepo.FindByID(ctx, alert.StockID)
	if err != nil {
		// Orphaned alerts are tolerated; anything else is logged and the
		// remaining alerts still get evaluated.
		if errors.Is(err, entity.ErrStockNotFound) {
			s.logger.DebugContext(ctx, "Alert references unknown stock, skipping",
				logger.Field("alert_id", alert.ID))
		} else {
			s.logger.ErrorContext(ctx, "Failed to load stock for alert",
				logger.ErrorField(err), logger.Field("alert_id", alert.ID))
		}
		return false
	}

	if !alert.CheckCondition(stock) {
		return false
	}

	message := telegram.FormatAlertTriggeredMessage(alert, stock)
	if err := s.notifier.SendMessage(message); err != nil {
		// Delivery is fire-and-forget; the alert still triggers.
		s.logger.ErrorContext(ctx, "Failed to send alert notification",
			logger.ErrorField(err), logger.Field("alert_id", alert.ID))
	}

	alert.Trigger()
	if err := s.alertRepo.Save(ctx, alert); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist triggered alert",
			logger.ErrorField(err), logger.Field("alert_id", alert.ID))
		return false
	}

	s.recordNotification(ctx, alert, stock, message)

	return true
}

// RefreshSinglePrice refreshes one stock on demand.
func (s *monitoringService) RefreshSinglePrice(ctx context.Context, stockCode string) (*entity.Stock, error) {
	stock, err := s.stockRepo.FindByCode(ctx, stockCode)
	if err != nil {
		return nil, err
	}

	price, err := s.quoteRepo.GetCurrentPrice(ctx, stockCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrPriceFetchFailed, err)
	}
	if price == nil {
		return nil, fmt.Errorf("%w: no quote for %s", entity.ErrPriceFetchFailed, stockCode)
	}

	event := stock.UpdatePrice(*price)
	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, fmt.Errorf("failed to persist stock: %w", err)
	}

	if !event.IsNone() {
		s.logger.InfoContext(ctx, "Price change event",
			logger.StringField("stock_code", stock.Code),
			logger.StringField("kind", string(event.Kind)))
	}

	s.cacheLastPrice(ctx, stock.Code, *price)

	return stock, nil
}

// cacheLastPrice records the observed price in Redis. Failures are
// logged only; the cache is advisory.
func (s *monitoringService) cacheLastPrice(ctx context.Context, code string, price entity.Price) {
	if s.redisClient == nil {
		return
	}

	key := fmt.Sprintf(common.RedisKeyLastPrice, code)
	pipe := s.redisClient.Pipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"price":     price.String(),
		"timestamp": time.Now().Unix(),
	})
	pipe.Expire(ctx, key, lastPriceTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Failed to cache last price",
			logger.ErrorField(err), logger.StringField("stock_code", code))
	}
}

func (s *monitoringService) recordNotification(ctx context.Context, alert *entity.Alert, stock *entity.Stock, message string) {
	payload, err := json.Marshal(map[string]interface{}{
		"alert_id":      alert.ID,
		"alert_type":    alert.AlertType,
		"stock_code":    stock.Code,
		"stock_name":    stock.Name,
		"current_price": stock.CurrentPrice,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to marshal notification payload",
			logger.ErrorField(err), logger.Field("alert_id", alert.ID))
		return
	}

	notification := &entity.Notification{
		AlertID: alert.ID,
		UserID:  alert.UserID,
		Message: message,
		Payload: payload,
		SentAt:  utils.TimeNowKST(),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.ErrorContext(ctx, "Failed to record notification",
			logger.ErrorField(err), logger.Field("alert_id", alert.ID))
	}
}
