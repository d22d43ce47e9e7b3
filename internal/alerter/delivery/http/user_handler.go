package http

import (
	"net/http"
	"strconv"

	"golang-stock-alert/internal/alerter/dto"
	"golang-stock-alert/internal/alerter/service"
	"golang-stock-alert/pkg/logger"

	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests for users and their notification
// history.
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: log}
}

// RegisterRoutes registers the user routes to the Echo group.
func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:id", h.GetUser)
	g.GET("/:id/notifications", h.GetUserNotifications)
}

// GetUser godoc
// @Summary Get a user by ID
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := h.userParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: dto.CodeInvalidRequest, Error: "Invalid user ID"})
	}

	user, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUserNotifications godoc
// @Summary List a user's delivered notifications
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.NotificationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id}/notifications [get]
func (h *UserHandler) GetUserNotifications(c echo.Context) error {
	userID, err := h.userParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: dto.CodeInvalidRequest, Error: "Invalid user ID"})
	}

	notifications, err := h.userService.GetUserNotifications(c.Request().Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *UserHandler) userParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
