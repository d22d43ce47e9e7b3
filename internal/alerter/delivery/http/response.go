package http

import (
	"errors"
	"net/http"

	"golang-stock-alert/internal/alerter/dto"
	"golang-stock-alert/internal/entity"

	"github.com/labstack/echo/v4"
)

// errorJSON maps domain errors to stable client-facing codes. Unexpected
// failures surface as a generic internal error without leaking detail.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, entity.ErrStockNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: dto.CodeStockNotFound, Error: "Stock not found"})
	case errors.Is(err, entity.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: dto.CodeUserNotFound, Error: "User not found"})
	case errors.Is(err, entity.ErrAlertNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: dto.CodeAlertNotFound, Error: "Alert not found"})
	case errors.Is(err, entity.ErrUnauthorizedAlertAccess):
		return c.JSON(http.StatusForbidden, dto.ErrorResponse{Code: dto.CodeUnauthorizedAlert, Error: "Unauthorized alert access"})
	case errors.Is(err, entity.ErrInvalidAlertCondition):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: dto.CodeInvalidAlertCondition, Error: err.Error()})
	case errors.Is(err, entity.ErrPriceFetchFailed):
		return c.JSON(http.StatusBadGateway, dto.ErrorResponse{Code: dto.CodePriceFetchFailed, Error: "Failed to fetch price"})
	default:
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: dto.CodeInternalError, Error: "Internal server error"})
	}
}
