// Package sales records book sales against stock rows.
//
// A sale and the matching stock decrement are written in one transaction:
// either both persist or neither does.
package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshop/internal/entities"
)

var (
	ErrStockNotFound     = errors.New("stock not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidSale       = errors.New("invalid sale")
)

// StockNotFoundError carries the stock id that did not resolve.
type StockNotFoundError struct {
	StockID uint
}

func (e *StockNotFoundError) Error() string {
	return fmt.Sprintf("stock %d not found", e.StockID)
}

func (e *StockNotFoundError) Is(target error) bool {
	return target == ErrStockNotFound
}

// InsufficientStockError reports how many copies were available when a sale
// asked for more.
type InsufficientStockError struct {
	StockID   uint
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock %d has %d copies, %d requested", e.StockID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Repository handles sale database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sales repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CheckSale reports whether stockID exists and holds at least count copies.
// A missing stock row or a short count is returned as an error describing
// the cause.
func (r *Repository) CheckSale(ctx context.Context, stockID uint, count int) (bool, error) {
	if err := checkStock(r.db.WithContext(ctx), stockID, count); err != nil {
		return false, err
	}
	return true, nil
}

// AddSale decrements the stock by count and records the sale.
func (r *Repository) AddSale(ctx context.Context, price decimal.Decimal, stockID uint, count int) (*entities.Sale, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidSale, count)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative, got %s", ErrInvalidSale, price)
	}
	if !price.Equal(price.Round(2)) {
		return nil, fmt.Errorf("%w: price must have at most 2 decimal places, got %s", ErrInvalidSale, price)
	}

	sale := &entities.Sale{Price: price, StockID: stockID, Count: count}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkStock(tx, stockID, count); err != nil {
			return err
		}

		// The count condition keeps the row from going negative even if it
		// changed after checkStock read it.
		result := tx.Model(&entities.Stock{}).
			Where("id = ? AND count >= ?", stockID, count).
			UpdateColumn("count", gorm.Expr("count - ?", count))
		if result.Error != nil {
			return fmt.Errorf("failed to decrement stock %d: %w", stockID, result.Error)
		}
		if result.RowsAffected == 0 {
			if err := checkStock(tx, stockID, count); err != nil {
				return err
			}
			return fmt.Errorf("stock %d changed during sale", stockID)
		}

		if err := tx.Create(sale).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// GetSalesForStock returns the sales recorded against a stock row, oldest first.
func (r *Repository) GetSalesForStock(ctx context.Context, stockID uint) ([]entities.Sale, error) {
	var sales []entities.Sale
	err := r.db.WithContext(ctx).
		Where("id_stock = ?", stockID).
		Order("id ASC").
		Find(&sales).Error
	return sales, err
}

func checkStock(tx *gorm.DB, stockID uint, count int) error {
	var stock entities.Stock
	err := tx.First(&stock, stockID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &StockNotFoundError{StockID: stockID}
	}
	if err != nil {
		return fmt.Errorf("failed to load stock %d: %w", stockID, err)
	}
	if stock.Count < count {
		return &InsufficientStockError{StockID: stockID, Available: stock.Count, Requested: count}
	}
	return nil
}
