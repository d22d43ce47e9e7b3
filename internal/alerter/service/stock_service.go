package service

import (
	"context"

	"golang-stock-alert/internal/alerter/dto"
	"golang-stock-alert/internal/alerter/repository"
	"golang-stock-alert/pkg/logger"
)

// StockService answers stock queries.
type StockService interface {
	GetStock(ctx context.Context, code string) (*dto.StockResponse, error)
	GetAllStocks(ctx context.Context) ([]*dto.StockResponse, error)
}

// NewStockService creates a new stock query service.
func NewStockService(stockRepo repository.StockRepository, log *logger.Logger) StockService {
	return &stockService{stockRepo: stockRepo, logger: log}
}

type stockService struct {
	stockRepo repository.StockRepository
	logger    *logger.Logger
}

// GetStock retrieves one stock by code.
func (s *stockService) GetStock(ctx context.Context, code string) (*dto.StockResponse, error) {
	stock, err := s.stockRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return dto.NewStockResponse(stock), nil
}

// GetAllStocks retrieves all tracked stocks.
func (s *stockService) GetAllStocks(ctx context.Context) ([]*dto.StockResponse, error) {
	stocks, err := s.stockRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.StockResponse, 0, len(stocks))
	for i := range stocks {
		responses = append(responses, dto.NewStockResponse(&stocks[i]))
	}
	return responses, nil
}
