package catalog

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshop/internal/entities"
)

// CheckStock reports whether the book is not yet stocked in the shop.
func (r *Repository) CheckStock(ctx context.Context, shopID, bookID uint) (bool, error) {
	return stockIsFree(shopID, bookID)(r.db.WithContext(ctx))
}

// AddStock records count copies of the book in the shop unless the pair is
// already stocked.
func (r *Repository) AddStock(ctx context.Context, shopID, bookID uint, count int) (*entities.Stock, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count must not be negative, got %d", ErrInvalid, count)
	}

	stock := &entities.Stock{ShopID: shopID, BookID: bookID, Count: count}
	dup := &DuplicateError{Kind: KindStock, Key: fmt.Sprintf("shop=%d book=%d", shopID, bookID)}
	if err := insertUnique(ctx, r.db, stock, stockIsFree(shopID, bookID), dup); err != nil {
		return nil, err
	}
	return stock, nil
}

// GetStockByID retrieves a stock row with its shop and book.
func (r *Repository) GetStockByID(ctx context.Context, id uint) (*entities.Stock, error) {
	var stock entities.Stock
	err := r.db.WithContext(ctx).Preload("Shop").Preload("Book").First(&stock, id).Error
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

func stockIsFree(shopID, bookID uint) guard {
	return func(tx *gorm.DB) (bool, error) {
		var count int64
		err := tx.Model(&entities.Stock{}).
			Where("id_shop = ? AND id_book = ?", shopID, bookID).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		return count == 0, nil
	}
}
