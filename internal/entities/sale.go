package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Sale struct {
	ID      uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Price   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	SoldAt  time.Time       `gorm:"column:date_sale;not null" json:"date_sale"`
	StockID uint            `gorm:"column:id_stock;not null;index" json:"id_stock"`
	Count   int             `gorm:"column:count;not null" json:"count"`
	Stock   *Stock          `gorm:"foreignKey:StockID" json:"stock,omitempty"`
}

func (Sale) TableName() string {
	return "sale"
}

// BeforeCreate stamps the sale with the current time unless a date was given.
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.SoldAt.IsZero() {
		s.SoldAt = time.Now()
	}
	return nil
}

// SaleReportRow is one line of the publisher sales report:
// a single sale of a publisher's book in a shop.
type SaleReportRow struct {
	SaleID    uint            `json:"sale_id"`
	Publisher string          `json:"publisher"`
	Title     string          `json:"title"`
	Shop      string          `json:"shop"`
	Price     decimal.Decimal `json:"price"`
	SoldAt    time.Time       `json:"date_sale"`
}

// Models lists every table in dependency order, parents first.
func Models() []any {
	return []any{
		&Publisher{},
		&Book{},
		&Shop{},
		&Stock{},
		&Sale{},
	}
}
