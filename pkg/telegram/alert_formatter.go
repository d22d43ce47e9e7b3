package telegram

import (
	"fmt"
	"strings"

	"golang-stock-alert/internal/entity"
)

// FormatAlertTriggeredMessage formats a triggered alert into a Markdown
// message for Telegram.
func FormatAlertTriggeredMessage(alert *entity.Alert, stock *entity.Stock) string {
	var b strings.Builder

	b.WriteString("🔔 *Stock Alert*\n\n")
	b.WriteString(fmt.Sprintf("%s *%s* (%s)\n", alertTypeIcon(alert.AlertType), stock.Name, stock.Code))
	b.WriteString(fmt.Sprintf("💰 *Current Price:* %s\n", stock.CurrentPrice))
	b.WriteString(fmt.Sprintf("📋 *Alert Type:* %s\n", alertTypeLabel(alert.AlertType)))

	if alert.Condition.TargetPrice != nil {
		direction := "at or above"
		if !alert.Condition.IsAbove {
			direction = "at or below"
		}
		b.WriteString(fmt.Sprintf("🎯 *Target:* %s %s\n", direction, alert.Condition.TargetPrice))
	}

	return b.String()
}

func alertTypeIcon(alertType entity.AlertType) string {
	switch alertType {
	case entity.AlertTypeNewHigh:
		return "🚀"
	case entity.AlertTypeSurge:
		return "📈"
	case entity.AlertTypeFall:
		return "📉"
	default:
		return "🎯"
	}
}

func alertTypeLabel(alertType entity.AlertType) string {
	switch alertType {
	case entity.AlertTypeTargetPrice:
		return "Target Price"
	case entity.AlertTypeChangeRate:
		return "Change Rate"
	case entity.AlertTypeNewHigh:
		return "New High"
	case entity.AlertTypeSurge:
		return "Surge"
	case entity.AlertTypeFall:
		return "Fall"
	default:
		return string(alertType)
	}
}
