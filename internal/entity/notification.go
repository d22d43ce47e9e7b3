package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is the audit record of one sent alert notification,
// including a JSON snapshot of the alert and stock state at send time.
type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	AlertID   uint           `gorm:"column:alert_id;not null" json:"alert_id"`
	UserID    uint           `gorm:"column:user_id;not null" json:"user_id"`
	Message   string         `gorm:"column:message;not null" json:"message"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	SentAt    time.Time      `gorm:"column:sent_at;not null" json:"sent_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
