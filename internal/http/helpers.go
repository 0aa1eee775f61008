package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshop/internal/database/catalog"
	"github.com/mrlokans/bookshop/internal/database/sales"
	"github.com/mrlokans/bookshop/internal/services"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (available stock, etc.)
}

// Error codes returned in ErrorResponse.Code.
const (
	CodeDuplicate         = "duplicate"
	CodeInsufficientStock = "insufficient_stock"
	CodeStockNotFound     = "stock_not_found"
	CodeInvalid           = "invalid"
	CodeNotFound          = "not_found"
)

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: CodeInvalid})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: CodeNotFound})
}

// respondLookupError sends 404 for a missing row and 500 otherwise.
func respondLookupError(c *gin.Context, err error, resource string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, resource)
		return
	}
	respondInternalError(c, err, "get "+resource)
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondStoreError maps an error from the store to a status code. Domain
// conflicts carry the same message the command line prints.
func respondStoreError(c *gin.Context, err error, context string) {
	msg, _ := services.Notice(err)

	var insufficient *sales.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   msg,
			Code:    CodeInsufficientStock,
			Details: gin.H{"available": insufficient.Available},
		})
	case errors.Is(err, sales.ErrStockNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msg, Code: CodeStockNotFound})
	case errors.Is(err, catalog.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: msg, Code: CodeDuplicate})
	case errors.Is(err, catalog.ErrInvalid), errors.Is(err, sales.ErrInvalidSale):
		respondBadRequest(c, err.Error())
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Request Parsing Helpers ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
