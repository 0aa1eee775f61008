// Package catalog provides database operations for publishers, books, shops
// and stock levels.
//
// Every Add* operation is a guarded insert: the matching Check* guard and the
// insert run in one transaction, and a guard hit returns a *DuplicateError
// without writing anything.
//
// # Usage
//
//	repo := catalog.NewRepository(db)
//	publisher, err := repo.AddPublisher(ctx, "A. Pushkin")
//	if errors.Is(err, catalog.ErrDuplicate) {
//		// already there
//	}
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrDuplicate is matched by every *DuplicateError.
	ErrDuplicate = errors.New("already exists")
	// ErrInvalid reports input rejected before reaching the store.
	ErrInvalid = errors.New("invalid input")
)

// Kind names the entity a duplicate was detected for.
type Kind string

const (
	KindPublisher Kind = "publisher"
	KindBook      Kind = "book"
	KindShop      Kind = "shop"
	KindStock     Kind = "stock"
)

// DuplicateError is returned when an insert is skipped because a matching
// row already exists.
type DuplicateError struct {
	Kind Kind
	Key  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Kind, e.Key)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// Option configures a Repository.
type Option func(*Repository)

// WithBookTitlesPerPublisher makes the book guard compare titles within the
// given publisher only. By default a title is unique across all publishers.
func WithBookTitlesPerPublisher(enabled bool) Option {
	return func(r *Repository) {
		r.bookTitlesPerPublisher = enabled
	}
}

// Repository handles publisher, book, shop and stock database operations.
type Repository struct {
	db                     *gorm.DB
	bookTitlesPerPublisher bool
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB, opts ...Option) *Repository {
	r := &Repository{db: db}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// guard reports whether a row may be inserted, using the given transaction.
type guard func(tx *gorm.DB) (bool, error)

// insertUnique runs check and, when it passes, creates row in the same
// transaction. A failed check returns dup and writes nothing.
func insertUnique[T any](ctx context.Context, db *gorm.DB, row *T, check guard, dup error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		free, err := check(tx)
		if err != nil {
			return err
		}
		if !free {
			return dup
		}
		return tx.Create(row).Error
	})
}

// nameIsFree reports whether no row of model has column equal to value,
// ignoring case.
func nameIsFree(tx *gorm.DB, model any, column, value string, scopes ...func(*gorm.DB) *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(model).
		Scopes(scopes...).
		Where("LOWER("+column+") = ?", strings.ToLower(value)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func cleanName(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalid, field)
	}
	return value, nil
}
