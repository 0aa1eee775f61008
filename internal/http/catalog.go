package http

import (
	"log"

	"github.com/gin-gonic/gin"
)

type CreatePublisherRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=50"`
	PublisherID uint   `json:"id_publisher" binding:"required"`
}

type CreateShopRequest struct {
	Name string `json:"name" binding:"required,max=30"`
}

type CreateStockRequest struct {
	ShopID uint `json:"id_shop" binding:"required"`
	BookID uint `json:"id_book" binding:"required"`
	Count  int  `json:"count" binding:"gte=0"`
}

// CatalogController creates publishers, books, shops and stock rows.
type CatalogController struct {
	store   Store
	auditor Auditor
}

func NewCatalogController(store Store, auditor Auditor) *CatalogController {
	return &CatalogController{store: store, auditor: auditor}
}

// CreatePublisher handles POST /api/publishers
func (cc *CatalogController) CreatePublisher(c *gin.Context) {
	var req CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	publisher, err := cc.store.AddPublisher(c.Request.Context(), req.Name)
	if err != nil {
		respondStoreError(c, err, "add publisher")
		return
	}
	saveAudit(cc.auditor, "publisher", req)
	respondCreated(c, publisher)
}

// CreateBook handles POST /api/books
func (cc *CatalogController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	book, err := cc.store.AddBook(c.Request.Context(), req.Title, req.PublisherID)
	if err != nil {
		respondStoreError(c, err, "add book")
		return
	}
	saveAudit(cc.auditor, "book", req)
	respondCreated(c, book)
}

// CreateShop handles POST /api/shops
func (cc *CatalogController) CreateShop(c *gin.Context) {
	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	shop, err := cc.store.AddShop(c.Request.Context(), req.Name)
	if err != nil {
		respondStoreError(c, err, "add shop")
		return
	}
	saveAudit(cc.auditor, "shop", req)
	respondCreated(c, shop)
}

// CreateStock handles POST /api/stocks
func (cc *CatalogController) CreateStock(c *gin.Context) {
	var req CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	stock, err := cc.store.AddStock(c.Request.Context(), req.ShopID, req.BookID, req.Count)
	if err != nil {
		respondStoreError(c, err, "add stock")
		return
	}
	saveAudit(cc.auditor, "stock", req)
	respondCreated(c, stock)
}

// saveAudit records an accepted request. A failed write is logged and does
// not fail the request, which has already been committed.
func saveAudit(auditor Auditor, operation string, body any) {
	if auditor == nil {
		return
	}
	if _, err := auditor.SaveJSON(operation, body); err != nil {
		log.Printf("Failed to audit %s request: %v", operation, err)
	}
}
