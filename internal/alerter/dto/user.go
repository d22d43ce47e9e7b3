package dto

import (
	"encoding/json"
	"time"

	"golang-stock-alert/internal/entity"
)

// UserResponse is the DTO for API responses containing user details.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a user entity to its response DTO.
func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// NotificationResponse is the DTO for a delivered alert notification.
type NotificationResponse struct {
	ID      uint            `json:"id"`
	AlertID uint            `json:"alert_id"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload,omitempty"`
	SentAt  time.Time       `json:"sent_at"`
}

// NewNotificationResponse maps a notification entity to its response DTO.
func NewNotificationResponse(notification *entity.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:      notification.ID,
		AlertID: notification.AlertID,
		Message: notification.Message,
		Payload: json.RawMessage(notification.Payload),
		SentAt:  notification.SentAt,
	}
}
