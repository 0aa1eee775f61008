package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshop/internal/database"
	"github.com/mrlokans/bookshop/internal/entities"
)

func setupTestDB(t *testing.T, opts ...Option) (*Repository, *gorm.DB, func()) {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "catalog.db") + "?_foreign_keys=on"

	db, err := database.NewDatabase(dsn, logger.Silent)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}
	return NewRepository(db.DB, opts...), db.DB, cleanup
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestRepository_AddPublisher(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("new name is accepted and retrievable", func(t *testing.T) {
		publisher, err := repo.AddPublisher(ctx, "A. Pushkin")
		require.NoError(t, err)
		assert.NotZero(t, publisher.ID)

		retrieved, err := repo.GetPublisherByID(ctx, publisher.ID)
		require.NoError(t, err)
		assert.Equal(t, "A. Pushkin", retrieved.Name)
	})

	t.Run("same name in another case is rejected", func(t *testing.T) {
		_, err := repo.AddPublisher(ctx, "a. PUSHKIN")

		assert.ErrorIs(t, err, ErrDuplicate)
		var dup *DuplicateError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, KindPublisher, dup.Kind)
		assert.Equal(t, int64(1), countRows(t, db, &entities.Publisher{}))
	})

	t.Run("non-ASCII names compare case-insensitively", func(t *testing.T) {
		_, err := repo.AddPublisher(ctx, "Лев Николаевич Толстой")
		require.NoError(t, err)

		_, err = repo.AddPublisher(ctx, "лев николаевич толстой")
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("blank name is invalid", func(t *testing.T) {
		_, err := repo.AddPublisher(ctx, "   ")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("GetAllPublishers returns insertion order", func(t *testing.T) {
		publishers, err := repo.GetAllPublishers(ctx)
		require.NoError(t, err)
		require.Len(t, publishers, 2)
		assert.Equal(t, "A. Pushkin", publishers[0].Name)
		assert.Equal(t, "Лев Николаевич Толстой", publishers[1].Name)
	})
}

func TestRepository_CheckPublisher(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	free, err := repo.CheckPublisher(ctx, "Penguin")
	require.NoError(t, err)
	assert.True(t, free)

	_, err = repo.AddPublisher(ctx, "Penguin")
	require.NoError(t, err)

	free, err = repo.CheckPublisher(ctx, "PENGUIN")
	require.NoError(t, err)
	assert.False(t, free)
}

func TestRepository_AddBook(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	pushkin, err := repo.AddPublisher(ctx, "Pushkin")
	require.NoError(t, err)
	tolstoy, err := repo.AddPublisher(ctx, "Tolstoy")
	require.NoError(t, err)

	t.Run("new title is accepted", func(t *testing.T) {
		book, err := repo.AddBook(ctx, "Ruslan and Ludmila", pushkin.ID)
		require.NoError(t, err)

		retrieved, err := repo.GetBookByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ruslan and Ludmila", retrieved.Title)
		require.NotNil(t, retrieved.Publisher)
		assert.Equal(t, "Pushkin", retrieved.Publisher.Name)
	})

	t.Run("duplicate title for the same publisher is rejected", func(t *testing.T) {
		_, err := repo.AddBook(ctx, "RUSLAN AND LUDMILA", pushkin.ID)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	// The default guard does not look at the publisher at all.
	t.Run("duplicate title for another publisher is rejected by default", func(t *testing.T) {
		_, err := repo.AddBook(ctx, "Ruslan and Ludmila", tolstoy.ID)
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.Equal(t, int64(1), countRows(t, db, &entities.Book{}))
	})

	t.Run("unknown publisher is a store error", func(t *testing.T) {
		_, err := repo.AddBook(ctx, "Nobody's Book", 999)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicate)
	})

	t.Run("GetBooksForPublisher filters by publisher", func(t *testing.T) {
		_, err := repo.AddBook(ctx, "The Captain's Daughter", pushkin.ID)
		require.NoError(t, err)
		_, err = repo.AddBook(ctx, "War and Peace", tolstoy.ID)
		require.NoError(t, err)

		books, err := repo.GetBooksForPublisher(ctx, pushkin.ID)
		require.NoError(t, err)
		require.Len(t, books, 2)
		assert.Equal(t, "Ruslan and Ludmila", books[0].Title)
		assert.Equal(t, "The Captain's Daughter", books[1].Title)
	})
}

func TestRepository_AddBook_TitlesPerPublisher(t *testing.T) {
	repo, _, cleanup := setupTestDB(t, WithBookTitlesPerPublisher(true))
	defer cleanup()
	ctx := context.Background()

	first, err := repo.AddPublisher(ctx, "First")
	require.NoError(t, err)
	second, err := repo.AddPublisher(ctx, "Second")
	require.NoError(t, err)

	_, err = repo.AddBook(ctx, "Poems", first.ID)
	require.NoError(t, err)

	free, err := repo.CheckBook(ctx, "poems", second.ID)
	require.NoError(t, err)
	assert.True(t, free)

	_, err = repo.AddBook(ctx, "Poems", second.ID)
	assert.NoError(t, err)

	_, err = repo.AddBook(ctx, "POEMS", first.ID)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRepository_AddShop(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	shop, err := repo.AddShop(ctx, "Bookshop")
	require.NoError(t, err)
	assert.NotZero(t, shop.ID)

	free, err := repo.CheckShop(ctx, "bookshop")
	require.NoError(t, err)
	assert.False(t, free)

	_, err = repo.AddShop(ctx, "BOOKSHOP")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.AddShop(ctx, "Labyrinth")
	require.NoError(t, err)

	shops, err := repo.GetAllShops(ctx)
	require.NoError(t, err)
	assert.Len(t, shops, 2)
	assert.Equal(t, int64(2), countRows(t, db, &entities.Shop{}))
}

func TestRepository_AddStock(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	publisher, err := repo.AddPublisher(ctx, "Pushkin")
	require.NoError(t, err)
	book, err := repo.AddBook(ctx, "Eugene Onegin", publisher.ID)
	require.NoError(t, err)
	shop, err := repo.AddShop(ctx, "Bookshop")
	require.NoError(t, err)
	other, err := repo.AddShop(ctx, "Labyrinth")
	require.NoError(t, err)

	t.Run("new pair succeeds", func(t *testing.T) {
		stock, err := repo.AddStock(ctx, shop.ID, book.ID, 10)
		require.NoError(t, err)

		retrieved, err := repo.GetStockByID(ctx, stock.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, retrieved.Count)
		require.NotNil(t, retrieved.Shop)
		require.NotNil(t, retrieved.Book)
		assert.Equal(t, "Bookshop", retrieved.Shop.Name)
		assert.Equal(t, "Eugene Onegin", retrieved.Book.Title)
	})

	t.Run("existing pair is rejected", func(t *testing.T) {
		free, err := repo.CheckStock(ctx, shop.ID, book.ID)
		require.NoError(t, err)
		assert.False(t, free)

		_, err = repo.AddStock(ctx, shop.ID, book.ID, 3)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("same book in another shop succeeds", func(t *testing.T) {
		_, err := repo.AddStock(ctx, other.ID, book.ID, 2)
		assert.NoError(t, err)
	})

	t.Run("zero count is allowed", func(t *testing.T) {
		extra, err := repo.AddBook(ctx, "Boris Godunov", publisher.ID)
		require.NoError(t, err)
		_, err = repo.AddStock(ctx, shop.ID, extra.ID, 0)
		assert.NoError(t, err)
	})

	t.Run("negative count is invalid", func(t *testing.T) {
		_, err := repo.AddStock(ctx, other.ID, 12345, -1)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	assert.Equal(t, int64(3), countRows(t, db, &entities.Stock{}))
}
