package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mrlokans/bookshop/internal/entities"
	"github.com/mrlokans/bookshop/internal/report"
	"github.com/mrlokans/bookshop/internal/services"
)

type ReportRow struct {
	SaleID    uint            `json:"sale_id"`
	Publisher string          `json:"publisher"`
	Title     string          `json:"title"`
	Shop      string          `json:"shop"`
	Price     decimal.Decimal `json:"price"`
	Date      string          `json:"date"` // DD-MM-YYYY
}

type ReportResponse struct {
	Publisher string      `json:"publisher"`
	Rows      []ReportRow `json:"rows"`
	Count     int         `json:"count"`
}

type ReportController struct {
	reports services.ReportReader
}

func NewReportController(reports services.ReportReader) *ReportController {
	return &ReportController{reports: reports}
}

// PublisherSales handles GET /api/report?publisher=...
// The publisher parameter is matched case-insensitively as a substring.
func (rc *ReportController) PublisherSales(c *gin.Context) {
	publisher := strings.ToLower(strings.TrimSpace(c.Query("publisher")))

	rows, err := rc.reports.PublisherSales(c.Request.Context(), publisher)
	if err != nil {
		respondInternalError(c, err, "publisher sales")
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: report.NotFound(publisher), Code: CodeNotFound})
		return
	}

	c.IndentedJSON(http.StatusOK, ReportResponse{
		Publisher: publisher,
		Rows:      asReportRows(rows),
		Count:     len(rows),
	})
}

func asReportRows(rows []entities.SaleReportRow) []ReportRow {
	out := make([]ReportRow, len(rows))
	for i, row := range rows {
		out[i] = ReportRow{
			SaleID:    row.SaleID,
			Publisher: row.Publisher,
			Title:     row.Title,
			Shop:      row.Shop,
			Price:     row.Price,
			Date:      row.SoldAt.Format(report.DateLayout),
		}
	}
	return out
}
