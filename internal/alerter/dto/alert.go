package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"golang-stock-alert/internal/entity"
)

// CreateAlertRequest is the DTO for creating a new alert.
type CreateAlertRequest struct {
	UserID              uint             `json:"user_id"`
	StockCode           string           `json:"stock_code"`
	AlertType           string           `json:"alert_type"`
	TargetPrice         *decimal.Decimal `json:"target_price,omitempty"`
	ChangeRateThreshold *decimal.Decimal `json:"change_rate_threshold,omitempty"`
	IsAbove             *bool            `json:"is_above,omitempty"`
}

// AlertResponse is the DTO for API responses containing alert details.
type AlertResponse struct {
	ID                  uint             `json:"id"`
	StockID             uint             `json:"stock_id"`
	UserID              uint             `json:"user_id"`
	AlertType           string           `json:"alert_type"`
	TargetPrice         *decimal.Decimal `json:"target_price,omitempty"`
	ChangeRateThreshold *decimal.Decimal `json:"change_rate_threshold,omitempty"`
	IsAbove             bool             `json:"is_above"`
	Status              string           `json:"status"`
	TriggeredAt         *time.Time       `json:"triggered_at,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
}

// NewAlertResponse maps an alert entity to its response DTO.
func NewAlertResponse(alert *entity.Alert) *AlertResponse {
	return &AlertResponse{
		ID:                  alert.ID,
		StockID:             alert.StockID,
		UserID:              alert.UserID,
		AlertType:           string(alert.AlertType),
		TargetPrice:         alert.Condition.TargetPrice,
		ChangeRateThreshold: alert.Condition.ChangeRateThreshold,
		IsAbove:             alert.Condition.IsAbove,
		Status:              string(alert.Status),
		TriggeredAt:         alert.TriggeredAt,
		CreatedAt:           alert.CreatedAt,
	}
}
