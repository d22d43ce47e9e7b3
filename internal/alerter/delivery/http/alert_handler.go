package http

import (
	"net/http"
	"strconv"

	"golang-stock-alert/internal/alerter/dto"
	"golang-stock-alert/internal/alerter/service"
	"golang-stock-alert/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AlertHandler handles HTTP requests for alerts.
type AlertHandler struct {
	alertService service.AlertService
	logger       *logger.Logger
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(alertService service.AlertService, log *logger.Logger) *AlertHandler {
	return &AlertHandler{alertService: alertService, logger: log}
}

// RegisterRoutes registers the alert routes to the Echo group.
func (h *AlertHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateAlert)
	g.GET("", h.GetUserAlerts)
	g.POST("/:id/disable", h.DisableAlert)
	g.DELETE("/:id", h.DeleteAlert)
}

// CreateAlert godoc
// @Summary Create a new alert
// @Accept json
// @Produce json
// @Param alert body dto.CreateAlertRequest true "Alert to create"
// @Success 201 {object} dto.AlertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /alerts [post]
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req dto.CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: dto.CodeInvalidRequest, Error: "Invalid request payload"})
	}

	alert, err := h.alertService.CreateAlert(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, alert)
}

// GetUserAlerts godoc
// @Summary List a user's alerts
// @Produce json
// @Param user_id query int true "User ID"
// @Success 200 {array} dto.AlertResponse
// @Router /alerts [get]
func (h *AlertHandler) GetUserAlerts(c echo.Context) error {
	userID, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: dto.CodeInvalidRequest, Error: "Invalid user ID"})
	}

	alerts, err := h.alertService.GetUserAlerts(c.Request().Context(), uint(userID))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, alerts)
}

// DisableAlert godoc
// @Summary Disable an alert
// @Produce json
// @Param id path int true "Alert ID"
// @Param user_id query int true "User ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /alerts/{id}/disable [post]
func (h *AlertHandler) DisableAlert(c echo.Context) error {
	alertID, userID, err := h.alertParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: dto.CodeInvalidRequest, Error: "Invalid alert or user ID"})
	}

	if err := h.alertService.DisableAlert(c.Request().Context(), alertID, userID); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAlert godoc
// @Summary Delete an alert
// @Produce json
// @Param id path int true "Alert ID"
// @Param user_id query int true "User ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /alerts/{id} [delete]
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	alertID, userID, err := h.alertParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: dto.CodeInvalidRequest, Error: "Invalid alert or user ID"})
	}

	if err := h.alertService.DeleteAlert(c.Request().Context(), alertID, userID); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AlertHandler) alertParams(c echo.Context) (alertID uint, userID uint, err error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, 0, err
	}
	user, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 32)
	if err != nil {
		return 0, 0, err
	}
	return uint(id), uint(user), nil
}
