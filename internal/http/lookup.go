package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshop/internal/services"
)

// LookupController serves the read side of the catalog.
type LookupController struct {
	catalog services.CatalogReader
}

func NewLookupController(catalog services.CatalogReader) *LookupController {
	return &LookupController{catalog: catalog}
}

// ListPublishers handles GET /api/publishers
func (lc *LookupController) ListPublishers(c *gin.Context) {
	publishers, err := lc.catalog.GetAllPublishers(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list publishers")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"publishers": publishers, "count": len(publishers)})
}

// PublisherBooks handles GET /api/publishers/:id/books
func (lc *LookupController) PublisherBooks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	publisher, err := lc.catalog.GetPublisherByID(ctx, id)
	if err != nil {
		respondLookupError(c, err, "publisher")
		return
	}
	books, err := lc.catalog.GetBooksForPublisher(ctx, id)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"publisher": publisher, "books": books, "count": len(books)})
}

// GetBook handles GET /api/books/:id
func (lc *LookupController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := lc.catalog.GetBookByID(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, "book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

// ListShops handles GET /api/shops
func (lc *LookupController) ListShops(c *gin.Context) {
	shops, err := lc.catalog.GetAllShops(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list shops")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"shops": shops, "count": len(shops)})
}

// GetStock handles GET /api/stocks/:id
func (lc *LookupController) GetStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	stock, err := lc.catalog.GetStockByID(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, "stock")
		return
	}
	c.IndentedJSON(http.StatusOK, stock)
}

// StockSales handles GET /api/stocks/:id/sales
func (lc *LookupController) StockSales(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := lc.catalog.GetStockByID(ctx, id); err != nil {
		respondLookupError(c, err, "stock")
		return
	}
	sales, err := lc.catalog.GetSalesForStock(ctx, id)
	if err != nil {
		respondInternalError(c, err, "list sales")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"sales": sales, "count": len(sales)})
}
