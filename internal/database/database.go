package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshop/internal/entities"
)

// Database is the process-wide store handle. It is opened once at startup,
// handed to every repository and closed on exit.
type Database struct {
	DB *gorm.DB
}

// NewDatabase connects to the store named by dsn and creates any missing
// tables. Existing data is left untouched; use ResetSchema to start over.
func NewDatabase(dsn string, logLevel logger.LogLevel) (*Database, error) {
	db, err := gorm.Open(Dialector(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}
	if err := database.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, err
	}

	log.Printf("Database initialized successfully (%s)", describe(dsn))

	return database, nil
}

// Migrate creates every table that does not exist yet.
func (d *Database) Migrate(ctx context.Context) error {
	if err := d.DB.WithContext(ctx).AutoMigrate(entities.Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// ResetSchema drops all tables and recreates them empty. Dropping a table that
// does not exist is a no-op, so the call is safe on a fresh store.
func (d *Database) ResetSchema(ctx context.Context) error {
	if err := d.DB.WithContext(ctx).Migrator().DropTable(entities.Models()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := d.Migrate(ctx); err != nil {
		return err
	}
	log.Printf("Database schema reset")
	return nil
}

// Ping checks that the store is still reachable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// describe strips credentials from a DSN before it is logged.
func describe(dsn string) string {
	if at := strings.LastIndex(dsn, "@"); at >= 0 {
		return "***" + dsn[at:]
	}
	return dsn
}
