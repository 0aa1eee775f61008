package catalog

import (
	"context"
	"strconv"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshop/internal/entities"
)

// CheckBook reports whether the title is still free, ignoring case.
//
// Unless the repository was built WithBookTitlesPerPublisher(true), the
// publisher is not part of the comparison: a title taken by any publisher
// counts as taken.
func (r *Repository) CheckBook(ctx context.Context, title string, publisherID uint) (bool, error) {
	return r.bookIsFree(title, publisherID)(r.db.WithContext(ctx))
}

// AddBook inserts a book for the publisher unless CheckBook rejects the title.
func (r *Repository) AddBook(ctx context.Context, title string, publisherID uint) (*entities.Book, error) {
	title, err := cleanName("title", title)
	if err != nil {
		return nil, err
	}

	book := &entities.Book{Title: title, PublisherID: publisherID}
	dup := &DuplicateError{Kind: KindBook, Key: strconv.Quote(title)}
	if err := insertUnique(ctx, r.db, book, r.bookIsFree(title, publisherID), dup); err != nil {
		return nil, err
	}
	return book, nil
}

// GetBookByID retrieves a book with its publisher.
func (r *Repository) GetBookByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.WithContext(ctx).Preload("Publisher").First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBooksForPublisher returns the publisher's books ordered by ID.
func (r *Repository) GetBooksForPublisher(ctx context.Context, publisherID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.WithContext(ctx).
		Where("id_publisher = ?", publisherID).
		Order("id ASC").
		Find(&books).Error
	return books, err
}

func (r *Repository) bookIsFree(title string, publisherID uint) guard {
	return func(tx *gorm.DB) (bool, error) {
		if !r.bookTitlesPerPublisher {
			return nameIsFree(tx, &entities.Book{}, "title", title)
		}
		return nameIsFree(tx, &entities.Book{}, "title", title, func(db *gorm.DB) *gorm.DB {
			return db.Where("id_publisher = ?", publisherID)
		})
	}
}
