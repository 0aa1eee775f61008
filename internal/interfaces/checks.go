package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshop/internal/audit"
	"github.com/mrlokans/bookshop/internal/database"
	"github.com/mrlokans/bookshop/internal/http"
	"github.com/mrlokans/bookshop/internal/loader"
	"github.com/mrlokans/bookshop/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.CatalogWriter = (*services.Store)(nil)
var _ services.CatalogReader = (*services.Store)(nil)
var _ services.SaleRecorder = (*services.Store)(nil)
var _ services.ReportReader = (*services.Store)(nil)
var _ services.SchemaResetter = (*services.Store)(nil)
var _ services.SchemaResetter = (*database.Database)(nil)

// =============================================================================
// Bulk Loading
// =============================================================================

var _ loader.Mutator = (*services.Store)(nil)

var _ loader.Record = loader.PublisherRecord{}
var _ loader.Record = loader.BookRecord{}
var _ loader.Record = loader.ShopRecord{}
var _ loader.Record = loader.StockRecord{}
var _ loader.Record = loader.SaleRecord{}

// =============================================================================
// HTTP Surface
// =============================================================================

var _ http.Store = (*services.Store)(nil)
var _ http.Pinger = (*database.Database)(nil)
var _ http.Auditor = (*audit.Auditor)(nil)
