package repository

import (
	"context"
	"errors"

	"golang-stock-alert/internal/entity"

	"gorm.io/gorm"
)

// StockRepository defines the interface for stock data operations.
type StockRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Stock, error)
	FindByCode(ctx context.Context, code string) (*entity.Stock, error)
	FindAll(ctx context.Context) ([]entity.Stock, error)
	Save(ctx context.Context, stock *entity.Stock) error
	SaveAll(ctx context.Context, stocks []entity.Stock) error
}

// NewStockRepository creates a new GORM-based stock repository.
func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db}
}

type stockRepository struct {
	db *gorm.DB
}

// FindByID retrieves a stock by its ID.
func (r *stockRepository) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).First(&stock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrStockNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindByCode retrieves a stock by its unique code.
func (r *stockRepository) FindByCode(ctx context.Context, code string) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).Where("stock_code = ?", code).First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrStockNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindAll retrieves all tracked stocks.
func (r *stockRepository) FindAll(ctx context.Context) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// Save persists a single stock.
func (r *stockRepository) Save(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// SaveAll persists a batch of stocks in one transaction so no partial
// batch is visible mid-write.
func (r *stockRepository) SaveAll(ctx context.Context, stocks []entity.Stock) error {
	if len(stocks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range stocks {
			if err := tx.Save(&stocks[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
