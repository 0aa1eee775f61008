package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mrlokans/bookshop/internal/database"
	"github.com/mrlokans/bookshop/internal/database/catalog"
	"github.com/mrlokans/bookshop/internal/database/reports"
	"github.com/mrlokans/bookshop/internal/database/sales"
	"github.com/mrlokans/bookshop/internal/entities"
)

// Store bundles the repositories over one store handle. It is the value the
// command line, the bulk loader and the HTTP controllers share.
type Store struct {
	db      *database.Database
	catalog *catalog.Repository
	sales   *sales.Repository
	reports *reports.Repository
}

// NewStore builds the repositories on top of db.
func NewStore(db *database.Database, opts ...catalog.Option) *Store {
	return &Store{
		db:      db,
		catalog: catalog.NewRepository(db.DB, opts...),
		sales:   sales.NewRepository(db.DB),
		reports: reports.NewRepository(db.DB),
	}
}

func (s *Store) ResetSchema(ctx context.Context) error {
	return s.db.ResetSchema(ctx)
}

func (s *Store) AddPublisher(ctx context.Context, name string) (*entities.Publisher, error) {
	return s.catalog.AddPublisher(ctx, name)
}

func (s *Store) AddBook(ctx context.Context, title string, publisherID uint) (*entities.Book, error) {
	return s.catalog.AddBook(ctx, title, publisherID)
}

func (s *Store) AddShop(ctx context.Context, name string) (*entities.Shop, error) {
	return s.catalog.AddShop(ctx, name)
}

func (s *Store) AddStock(ctx context.Context, shopID, bookID uint, count int) (*entities.Stock, error) {
	return s.catalog.AddStock(ctx, shopID, bookID, count)
}

func (s *Store) AddSale(ctx context.Context, price decimal.Decimal, stockID uint, count int) (*entities.Sale, error) {
	return s.sales.AddSale(ctx, price, stockID, count)
}

func (s *Store) PublisherSales(ctx context.Context, substring string) ([]entities.SaleReportRow, error) {
	return s.reports.PublisherSales(ctx, substring)
}

func (s *Store) GetAllPublishers(ctx context.Context) ([]entities.Publisher, error) {
	return s.catalog.GetAllPublishers(ctx)
}

func (s *Store) GetPublisherByID(ctx context.Context, id uint) (*entities.Publisher, error) {
	return s.catalog.GetPublisherByID(ctx, id)
}

func (s *Store) GetBooksForPublisher(ctx context.Context, publisherID uint) ([]entities.Book, error) {
	return s.catalog.GetBooksForPublisher(ctx, publisherID)
}

func (s *Store) GetBookByID(ctx context.Context, id uint) (*entities.Book, error) {
	return s.catalog.GetBookByID(ctx, id)
}

func (s *Store) GetAllShops(ctx context.Context) ([]entities.Shop, error) {
	return s.catalog.GetAllShops(ctx)
}

func (s *Store) GetStockByID(ctx context.Context, id uint) (*entities.Stock, error) {
	return s.catalog.GetStockByID(ctx, id)
}

func (s *Store) GetSalesForStock(ctx context.Context, stockID uint) ([]entities.Sale, error) {
	return s.sales.GetSalesForStock(ctx, stockID)
}
