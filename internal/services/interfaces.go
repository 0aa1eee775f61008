package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mrlokans/bookshop/internal/entities"
)

// CatalogWriter inserts publishers, books, shops and stock rows.
// Each Add* call skips the insert and returns an error matching
// catalog.ErrDuplicate when an equivalent row already exists.
type CatalogWriter interface {
	AddPublisher(ctx context.Context, name string) (*entities.Publisher, error)
	AddBook(ctx context.Context, title string, publisherID uint) (*entities.Book, error)
	AddShop(ctx context.Context, name string) (*entities.Shop, error)
	AddStock(ctx context.Context, shopID, bookID uint, count int) (*entities.Stock, error)
}

// SaleRecorder records sales and decrements stock.
type SaleRecorder interface {
	AddSale(ctx context.Context, price decimal.Decimal, stockID uint, count int) (*entities.Sale, error)
}

// ReportReader answers the publisher sales report.
type ReportReader interface {
	PublisherSales(ctx context.Context, substring string) ([]entities.SaleReportRow, error)
}

// CatalogReader looks catalog rows up. Single-row lookups return
// gorm.ErrRecordNotFound for an unknown id.
type CatalogReader interface {
	GetAllPublishers(ctx context.Context) ([]entities.Publisher, error)
	GetPublisherByID(ctx context.Context, id uint) (*entities.Publisher, error)
	GetBooksForPublisher(ctx context.Context, publisherID uint) ([]entities.Book, error)
	GetBookByID(ctx context.Context, id uint) (*entities.Book, error)
	GetAllShops(ctx context.Context) ([]entities.Shop, error)
	GetStockByID(ctx context.Context, id uint) (*entities.Stock, error)
	GetSalesForStock(ctx context.Context, stockID uint) ([]entities.Sale, error)
}

// SchemaResetter drops and recreates the whole schema.
type SchemaResetter interface {
	ResetSchema(ctx context.Context) error
}
