// Package report renders the publisher sales report as fixed-width text.
package report

import (
	"fmt"
	"io"

	"github.com/mrlokans/bookshop/internal/entities"
)

// DateLayout formats sale dates as day-month-year.
const DateLayout = "02-01-2006"

const (
	titleWidth = 50
	shopWidth  = 30
	priceWidth = 10
)

// FormatRow renders one report row:
//
//	title (50) | shop (30) | price (10) | DD-MM-YYYY
func FormatRow(row entities.SaleReportRow) string {
	return fmt.Sprintf("%-*s | %-*s | %-*s | %s",
		titleWidth, row.Title,
		shopWidth, row.Shop,
		priceWidth, row.Price.String(),
		row.SoldAt.Format(DateLayout),
	)
}

// NotFound is the message printed when no publisher matched.
func NotFound(publisher string) string {
	return fmt.Sprintf("Publisher %q not found", publisher)
}

// Write prints rows one per line, or the not-found message when there are none.
func Write(w io.Writer, publisher string, rows []entities.SaleReportRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, NotFound(publisher))
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, FormatRow(row)); err != nil {
			return err
		}
	}
	return nil
}
