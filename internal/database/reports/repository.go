// Package reports provides read-only reporting queries.
package reports

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshop/internal/entities"
)

// Repository runs reporting queries against the store.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reports repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PublisherSales lists every sale of books whose publisher name contains
// substring, ignoring case. An empty substring matches all publishers;
// "%" and "_" in substring match only themselves.
//
// Only completed sales appear: publishers without books, books never stocked
// and stock never sold are left out by the inner joins. Rows are ordered by
// sale ID.
func (r *Repository) PublisherSales(ctx context.Context, substring string) ([]entities.SaleReportRow, error) {
	var rows []entities.SaleReportRow
	err := r.db.WithContext(ctx).
		Table("publisher").
		Select("sale.id AS sale_id, publisher.name AS publisher, book.title AS title, " +
			"shop.name AS shop, sale.price AS price, sale.date_sale AS sold_at").
		Joins("JOIN book ON book.id_publisher = publisher.id").
		Joins("JOIN stock ON stock.id_book = book.id").
		Joins("JOIN shop ON shop.id = stock.id_shop").
		Joins("JOIN sale ON sale.id_stock = stock.id").
		Where("LOWER(publisher.name) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(substring))+"%").
		Order("sale.id ASC").
		Scan(&rows).Error
	return rows, err
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike quotes LIKE wildcards with '!'. A backslash would need
// doubling inside MySQL string literals.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
