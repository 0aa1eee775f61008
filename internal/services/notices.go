package services

import (
	"errors"
	"fmt"

	"github.com/mrlokans/bookshop/internal/database/catalog"
	"github.com/mrlokans/bookshop/internal/database/sales"
)

// Notice turns an expected domain conflict into the short message shown to
// the user. ok is false for anything else, which callers must treat as a
// real failure.
func Notice(err error) (msg string, ok bool) {
	var dup *catalog.DuplicateError
	if errors.As(err, &dup) {
		switch dup.Kind {
		case catalog.KindPublisher:
			return fmt.Sprintf("Publisher %s already exists", dup.Key), true
		case catalog.KindBook:
			return fmt.Sprintf("Book %s already exists", dup.Key), true
		case catalog.KindShop:
			return fmt.Sprintf("Shop %s already exists", dup.Key), true
		case catalog.KindStock:
			return "Book is already stocked in this shop", true
		}
		return dup.Error(), true
	}

	var insufficient *sales.InsufficientStockError
	if errors.As(err, &insufficient) {
		return fmt.Sprintf("Not enough books in stock. Available: %d", insufficient.Available), true
	}

	var notFound *sales.StockNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("Stock %d does not exist", notFound.StockID), true
	}

	return "", false
}
