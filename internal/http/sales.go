package http

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateSaleRequest struct {
	Price   *decimal.Decimal `json:"price" binding:"required"`
	StockID uint             `json:"id_stock" binding:"required"`
	Count   int              `json:"count" binding:"gt=0"`
}

type SalesController struct {
	store   Store
	auditor Auditor
}

func NewSalesController(store Store, auditor Auditor) *SalesController {
	return &SalesController{store: store, auditor: auditor}
}

// CreateSale handles POST /api/sales
func (sc *SalesController) CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	sale, err := sc.store.AddSale(c.Request.Context(), *req.Price, req.StockID, req.Count)
	if err != nil {
		respondStoreError(c, err, "add sale")
		return
	}
	saveAudit(sc.auditor, "sale", req)
	respondCreated(c, sale)
}
