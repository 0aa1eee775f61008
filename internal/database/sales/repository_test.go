package sales

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshop/internal/database"
	"github.com/mrlokans/bookshop/internal/entities"
)

// setupTestDB returns a repository over a store holding one stock row with 10 copies.
func setupTestDB(t *testing.T) (*Repository, *gorm.DB, *entities.Stock, func()) {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "sales.db") + "?_foreign_keys=on"

	db, err := database.NewDatabase(dsn, logger.Silent)
	require.NoError(t, err)

	publisher := entities.Publisher{Name: "A. Pushkin"}
	require.NoError(t, db.DB.Create(&publisher).Error)
	book := entities.Book{Title: "Ruslan and Ludmila", PublisherID: publisher.ID}
	require.NoError(t, db.DB.Create(&book).Error)
	shop := entities.Shop{Name: "Bookshop"}
	require.NoError(t, db.DB.Create(&shop).Error)
	stock := entities.Stock{ShopID: shop.ID, BookID: book.ID, Count: 10}
	require.NoError(t, db.DB.Create(&stock).Error)

	cleanup := func() {
		db.Close()
	}
	return NewRepository(db.DB), db.DB, &stock, cleanup
}

func stockCount(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var stock entities.Stock
	require.NoError(t, db.First(&stock, id).Error)
	return stock.Count
}

func saleCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&entities.Sale{}).Count(&count).Error)
	return count
}

func TestRepository_AddSale_DecrementsStock(t *testing.T) {
	repo, db, stock, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	sale, err := repo.AddSale(ctx, decimal.NewFromInt(450), stock.ID, 1)
	require.NoError(t, err)

	assert.NotZero(t, sale.ID)
	assert.Equal(t, stock.ID, sale.StockID)
	assert.True(t, sale.SoldAt.After(before))
	assert.Equal(t, 9, stockCount(t, db, stock.ID))

	sales, err := repo.GetSalesForStock(ctx, stock.ID)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, decimal.NewFromInt(450).Equal(sales[0].Price))
	assert.Equal(t, 1, sales[0].Count)
}

func TestRepository_AddSale_WholeStock(t *testing.T) {
	repo, db, stock, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.AddSale(context.Background(), decimal.RequireFromString("99.90"), stock.ID, 10)
	require.NoError(t, err)

	assert.Equal(t, 0, stockCount(t, db, stock.ID))
	assert.Equal(t, int64(1), saleCount(t, db))
}

func TestRepository_AddSale_InsufficientStock(t *testing.T) {
	repo, db, stock, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.AddSale(context.Background(), decimal.NewFromInt(450), stock.ID, 11)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 10, insufficient.Available)
	assert.Equal(t, 11, insufficient.Requested)

	assert.Equal(t, 10, stockCount(t, db, stock.ID))
	assert.Zero(t, saleCount(t, db))
}

func TestRepository_AddSale_UnknownStock(t *testing.T) {
	repo, db, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.AddSale(context.Background(), decimal.NewFromInt(100), 404, 1)

	assert.ErrorIs(t, err, ErrStockNotFound)
	var notFound *StockNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(404), notFound.StockID)
	assert.Zero(t, saleCount(t, db))
}

func TestRepository_AddSale_InvalidInput(t *testing.T) {
	repo, db, stock, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.AddSale(ctx, decimal.NewFromInt(100), stock.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidSale)

	_, err = repo.AddSale(ctx, decimal.NewFromInt(100), stock.ID, -2)
	assert.ErrorIs(t, err, ErrInvalidSale)

	_, err = repo.AddSale(ctx, decimal.NewFromInt(-1), stock.ID, 1)
	assert.ErrorIs(t, err, ErrInvalidSale)

	_, err = repo.AddSale(ctx, decimal.RequireFromString("12.345"), stock.ID, 1)
	assert.ErrorIs(t, err, ErrInvalidSale)

	assert.Equal(t, 10, stockCount(t, db, stock.ID))
	assert.Zero(t, saleCount(t, db))
}

func TestRepository_AddSale_AcceptsCents(t *testing.T) {
	repo, db, stock, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.AddSale(ctx, decimal.RequireFromString("12.30"), stock.ID, 1)
	require.NoError(t, err)

	sales, err := repo.GetSalesForStock(ctx, stock.ID)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, decimal.RequireFromString("12.3").Equal(sales[0].Price))
	assert.Equal(t, 9, stockCount(t, db, stock.ID))
}

func TestRepository_AddSale_RollsBackStockWhenSaleFails(t *testing.T) {
	repo, db, stock, cleanup := setupTestDB(t)
	defer cleanup()

	err := db.Callback().Create().Before("gorm:create").Register("test:fail_sale", func(tx *gorm.DB) {
		if tx.Statement.Table == "sale" {
			_ = tx.AddError(errors.New("disk full"))
		}
	})
	require.NoError(t, err)

	_, err = repo.AddSale(context.Background(), decimal.NewFromInt(450), stock.ID, 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create sale: disk full")
	assert.Equal(t, 10, stockCount(t, db, stock.ID))
	assert.Zero(t, saleCount(t, db))
}

func TestRepository_AddSale_Sequence(t *testing.T) {
	repo, db, stock, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.AddSale(ctx, decimal.NewFromInt(450), stock.ID, 3)
		require.NoError(t, err)
	}
	_, err := repo.AddSale(ctx, decimal.NewFromInt(450), stock.ID, 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Equal(t, 1, stockCount(t, db, stock.ID))
	assert.Equal(t, int64(3), saleCount(t, db))
}

func TestRepository_AddSale_KeepsGivenDate(t *testing.T) {
	_, db, stock, cleanup := setupTestDB(t)
	defer cleanup()

	soldAt := time.Date(2022, 11, 3, 12, 0, 0, 0, time.UTC)
	sale := entities.Sale{Price: decimal.NewFromInt(1), StockID: stock.ID, Count: 1, SoldAt: soldAt}
	require.NoError(t, db.Create(&sale).Error)

	assert.True(t, soldAt.Equal(sale.SoldAt))
}

func TestRepository_CheckSale(t *testing.T) {
	repo, _, stock, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	ok, err := repo.CheckSale(ctx, stock.ID, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CheckSale(ctx, stock.ID, 11)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	ok, err = repo.CheckSale(ctx, 999, 1)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrStockNotFound)
}
