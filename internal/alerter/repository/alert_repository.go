package repository

import (
	"context"
	"errors"

	"golang-stock-alert/internal/entity"

	"gorm.io/gorm"
)

// AlertRepository defines the interface for alert data operations.
type AlertRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Alert, error)
	FindByUserID(ctx context.Context, userID uint) ([]entity.Alert, error)
	FindByStockID(ctx context.Context, stockID uint) ([]entity.Alert, error)
	FindActive(ctx context.Context) ([]entity.Alert, error)
	Save(ctx context.Context, alert *entity.Alert) error
	Delete(ctx context.Context, alert *entity.Alert) error
}

// NewAlertRepository creates a new GORM-based alert repository.
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

type alertRepository struct {
	db *gorm.DB
}

// FindByID retrieves an alert by its ID.
func (r *alertRepository) FindByID(ctx context.Context, id uint) (*entity.Alert, error) {
	var alert entity.Alert
	if err := r.db.WithContext(ctx).First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

// FindByUserID retrieves all alerts owned by a user.
func (r *alertRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.Alert, error) {
	var alerts []entity.Alert
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// FindByStockID retrieves all alerts watching a stock.
func (r *alertRepository) FindByStockID(ctx context.Context, stockID uint) ([]entity.Alert, error) {
	var alerts []entity.Alert
	if err := r.db.WithContext(ctx).Where("stock_id = ?", stockID).Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// FindActive retrieves the alerts eligible for the evaluation cycle.
func (r *alertRepository) FindActive(ctx context.Context) ([]entity.Alert, error) {
	var alerts []entity.Alert
	if err := r.db.WithContext(ctx).Where("status = ?", entity.AlertStatusActive).Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// Save persists an alert.
func (r *alertRepository) Save(ctx context.Context, alert *entity.Alert) error {
	return r.db.WithContext(ctx).Save(alert).Error
}

// Delete removes an alert.
func (r *alertRepository) Delete(ctx context.Context, alert *entity.Alert) error {
	return r.db.WithContext(ctx).Delete(alert).Error
}
