package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshop/internal/database"
	"github.com/mrlokans/bookshop/internal/database/catalog"
	"github.com/mrlokans/bookshop/internal/database/sales"
	"github.com/mrlokans/bookshop/internal/report"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "store.db") + "?_foreign_keys=on"

	db, err := database.NewDatabase(dsn, logger.Silent)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}
	return NewStore(db), cleanup
}

func TestStore_EndToEnd(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	publisher, err := store.AddPublisher(ctx, "A. Pushkin")
	require.NoError(t, err)
	book, err := store.AddBook(ctx, "Ruslan and Ludmila", publisher.ID)
	require.NoError(t, err)
	shop, err := store.AddShop(ctx, "Bookshop")
	require.NoError(t, err)
	stock, err := store.AddStock(ctx, shop.ID, book.ID, 10)
	require.NoError(t, err)
	sale, err := store.AddSale(ctx, decimal.NewFromInt(450), stock.ID, 1)
	require.NoError(t, err)

	rows, err := store.PublisherSales(ctx, "pushkin")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ruslan and Ludmila", rows[0].Title)
	assert.Equal(t, "Bookshop", rows[0].Shop)
	assert.True(t, decimal.NewFromInt(450).Equal(rows[0].Price))
	assert.Equal(t, sale.SoldAt.Format(report.DateLayout), rows[0].SoldAt.Format(report.DateLayout))

	updated, err := store.GetStockByID(ctx, stock.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Count)
}

func TestStore_ResetSchema(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.AddPublisher(ctx, "Temporary")
	require.NoError(t, err)

	require.NoError(t, store.ResetSchema(ctx))

	publishers, err := store.GetAllPublishers(ctx)
	require.NoError(t, err)
	assert.Empty(t, publishers)
}

func TestNotice(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
		ok   bool
	}{
		{
			name: "duplicate publisher",
			err:  &catalog.DuplicateError{Kind: catalog.KindPublisher, Key: `"A. Pushkin"`},
			want: `Publisher "A. Pushkin" already exists`,
			ok:   true,
		},
		{
			name: "duplicate book",
			err:  &catalog.DuplicateError{Kind: catalog.KindBook, Key: `"Poems"`},
			want: `Book "Poems" already exists`,
			ok:   true,
		},
		{
			name: "duplicate shop",
			err:  &catalog.DuplicateError{Kind: catalog.KindShop, Key: `"Bookshop"`},
			want: `Shop "Bookshop" already exists`,
			ok:   true,
		},
		{
			name: "duplicate stock",
			err:  &catalog.DuplicateError{Kind: catalog.KindStock, Key: "shop=1 book=1"},
			want: "Book is already stocked in this shop",
			ok:   true,
		},
		{
			name: "wrapped insufficient stock",
			err:  fmt.Errorf("line 3: %w", &sales.InsufficientStockError{StockID: 1, Available: 2, Requested: 5}),
			want: "Not enough books in stock. Available: 2",
			ok:   true,
		},
		{
			name: "unknown stock",
			err:  &sales.StockNotFoundError{StockID: 7},
			want: "Stock 7 does not exist",
			ok:   true,
		},
		{
			name: "store failure",
			err:  errors.New("FOREIGN KEY constraint failed"),
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := Notice(tt.err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, msg)
		})
	}
}
