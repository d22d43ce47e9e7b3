package http

import (
	"net/http"

	"golang-stock-alert/internal/alerter/dto"
	"golang-stock-alert/internal/alerter/service"
	"golang-stock-alert/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockHandler handles HTTP requests for stocks.
type StockHandler struct {
	stockService      service.StockService
	monitoringService service.MonitoringService
	logger            *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService, monitoringService service.MonitoringService, log *logger.Logger) *StockHandler {
	return &StockHandler{stockService: stockService, monitoringService: monitoringService, logger: log}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAllStocks)
	g.GET("/:code", h.GetStock)
	g.POST("/:code/refresh", h.RefreshStock)
}

// GetAllStocks godoc
// @Summary List all tracked stocks
// @Produce json
// @Success 200 {array} dto.StockResponse
// @Router /stocks [get]
func (h *StockHandler) GetAllStocks(c echo.Context) error {
	stocks, err := h.stockService.GetAllStocks(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, stocks)
}

// GetStock godoc
// @Summary Get a stock by code
// @Produce json
// @Param code path string true "Stock code"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stocks/{code} [get]
func (h *StockHandler) GetStock(c echo.Context) error {
	stock, err := h.stockService.GetStock(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, stock)
}

// RefreshStock godoc
// @Summary Refresh one stock's price on demand
// @Produce json
// @Param code path string true "Stock code"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /stocks/{code}/refresh [post]
func (h *StockHandler) RefreshStock(c echo.Context) error {
	stock, err := h.monitoringService.RefreshSinglePrice(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewStockResponse(stock))
}
