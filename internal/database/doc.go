// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Store handle: connect, migrate, reset, close
//	├── dialect.go       # DSN -> gorm driver (SQLite, PostgreSQL, MySQL)
//	├── sqlite.go        # SQLite driver with Unicode-aware lower()
//	├── catalog/         # Publishers, books, shops, stock: guards and inserts
//	├── sales/           # Sale recording with the stock decrement
//	└── reports/         # Publisher sales report join
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type built from the shared handle:
//
//	db, err := database.NewDatabase("file:bookshop.db?_foreign_keys=on", logger.Warn)
//
//	catalogRepo := catalog.NewRepository(db.DB)
//	salesRepo := sales.NewRepository(db.DB)
//	reportsRepo := reports.NewRepository(db.DB)
//
//	publisher, err := catalogRepo.AddPublisher(ctx, "A. Pushkin")
//	rows, err := reportsRepo.PublisherSales(ctx, "pushkin")
//
// # Schema Lifecycle
//
// NewDatabase creates missing tables. ResetSchema drops every table and
// creates them again; the bulk loader calls it before replaying a data file.
package database
