package dto

import (
	"time"

	"golang-stock-alert/internal/entity"
)

// StockResponse is the DTO for API responses containing stock details.
type StockResponse struct {
	ID           uint         `json:"id"`
	Code         string       `json:"stock_code"`
	Name         string       `json:"stock_name"`
	MarketType   string       `json:"market_type"`
	CurrentPrice entity.Price `json:"current_price"`
	HighestPrice entity.Price `json:"highest_price"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewStockResponse maps a stock entity to its response DTO.
func NewStockResponse(stock *entity.Stock) *StockResponse {
	return &StockResponse{
		ID:           stock.ID,
		Code:         stock.Code,
		Name:         stock.Name,
		MarketType:   stock.MarketType,
		CurrentPrice: stock.CurrentPrice,
		HighestPrice: stock.HighestPrice,
		UpdatedAt:    stock.UpdatedAt,
	}
}
