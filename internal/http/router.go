package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())
	if cfg.ReadOnly != nil {
		router.Use(cfg.ReadOnly.Handler())
	}

	healthController := NewHealthController(cfg)
	router.GET("/health", healthController.Status)

	catalogController := NewCatalogController(cfg.Store, cfg.Auditor)
	lookupController := NewLookupController(cfg.Store)
	salesController := NewSalesController(cfg.Store, cfg.Auditor)
	reportController := NewReportController(cfg.Store)

	api := router.Group("/api")
	{
		api.POST("/publishers", catalogController.CreatePublisher)
		api.GET("/publishers", lookupController.ListPublishers)
		api.GET("/publishers/:id/books", lookupController.PublisherBooks)
		api.POST("/books", catalogController.CreateBook)
		api.GET("/books/:id", lookupController.GetBook)
		api.POST("/shops", catalogController.CreateShop)
		api.GET("/shops", lookupController.ListShops)
		api.POST("/stocks", catalogController.CreateStock)
		api.GET("/stocks/:id", lookupController.GetStock)
		api.GET("/stocks/:id/sales", lookupController.StockSales)
		api.POST("/sales", salesController.CreateSale)
		api.GET("/report", reportController.PublisherSales)
	}

	return router
}
