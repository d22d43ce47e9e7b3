package repository

import (
	"context"

	"golang-stock-alert/internal/entity"

	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification audit records.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByUserID(ctx context.Context, userID uint) ([]entity.Notification, error)
}

// NewNotificationRepository creates a new GORM-based notification repository.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

type notificationRepository struct {
	db *gorm.DB
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) FindByUserID(ctx context.Context, userID uint) ([]entity.Notification, error) {
	var notifications []entity.Notification
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("sent_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}
