package service

import (
	"context"
	"fmt"

	"golang-stock-alert/internal/alerter/dto"
	"golang-stock-alert/internal/alerter/repository"
	"golang-stock-alert/internal/entity"
	"golang-stock-alert/pkg/logger"
)

// AlertService manages user-owned alerts.
type AlertService interface {
	CreateAlert(ctx context.Context, req *dto.CreateAlertRequest) (*dto.AlertResponse, error)
	GetUserAlerts(ctx context.Context, userID uint) ([]*dto.AlertResponse, error)
	DisableAlert(ctx context.Context, alertID, userID uint) error
	DeleteAlert(ctx context.Context, alertID, userID uint) error
}

// NewAlertService creates a new alert service.
func NewAlertService(alertRepo repository.AlertRepository, stockRepo repository.StockRepository, userRepo repository.UserRepository, log *logger.Logger) AlertService {
	return &alertService{
		alertRepo: alertRepo,
		stockRepo: stockRepo,
		userRepo:  userRepo,
		logger:    log,
	}
}

type alertService struct {
	alertRepo repository.AlertRepository
	stockRepo repository.StockRepository
	userRepo  repository.UserRepository
	logger    *logger.Logger
}

// CreateAlert verifies the owner and stock exist, builds the condition
// matching the alert type, and persists a new Active alert.
func (s *alertService) CreateAlert(ctx context.Context, req *dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	alertType := entity.AlertType(req.AlertType)
	if !alertType.Valid() {
		return nil, fmt.Errorf("%w: unknown alert type %q", entity.ErrInvalidAlertCondition, req.AlertType)
	}

	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	stock, err := s.stockRepo.FindByCode(ctx, req.StockCode)
	if err != nil {
		return nil, err
	}

	condition, err := entity.NewAlertCondition(alertType, req.TargetPrice, req.ChangeRateThreshold, req.IsAbove)
	if err != nil {
		return nil, err
	}

	alert := entity.NewAlert(stock.ID, req.UserID, alertType, condition)
	if err := s.alertRepo.Save(ctx, alert); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Alert created",
		logger.Field("alert_id", alert.ID),
		logger.Field("user_id", alert.UserID),
		logger.StringField("stock_code", stock.Code),
		logger.StringField("alert_type", string(alertType)))

	return dto.NewAlertResponse(alert), nil
}

// GetUserAlerts lists all alerts owned by a user.
func (s *alertService) GetUserAlerts(ctx context.Context, userID uint) ([]*dto.AlertResponse, error) {
	alerts, err := s.alertRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		responses = append(responses, dto.NewAlertResponse(&alerts[i]))
	}
	return responses, nil
}

// DisableAlert disables an alert after checking ownership.
func (s *alertService) DisableAlert(ctx context.Context, alertID, userID uint) error {
	alert, err := s.ownedAlert(ctx, alertID, userID)
	if err != nil {
		return err
	}

	alert.Disable()
	return s.alertRepo.Save(ctx, alert)
}

// DeleteAlert removes an alert after checking ownership.
func (s *alertService) DeleteAlert(ctx context.Context, alertID, userID uint) error {
	alert, err := s.ownedAlert(ctx, alertID, userID)
	if err != nil {
		return err
	}

	return s.alertRepo.Delete(ctx, alert)
}

func (s *alertService) ownedAlert(ctx context.Context, alertID, userID uint) (*entity.Alert, error) {
	alert, err := s.alertRepo.FindByID(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if !alert.BelongsTo(userID) {
		return nil, fmt.Errorf("%w: alert %d, user %d", entity.ErrUnauthorizedAlertAccess, alertID, userID)
	}
	return alert, nil
}
