package http

import (
	"context"

	"github.com/mrlokans/bookshop/internal/services"
)

// This file gathers the store interfaces used by the controllers. Each
// controller depends on the narrowest one it needs.

// Pinger checks that the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Auditor saves accepted request bodies.
type Auditor interface {
	SaveJSON(operation string, body any) (string, error)
}

// Store is everything the API can do to the catalog.
type Store interface {
	services.CatalogWriter
	services.CatalogReader
	services.SaleRecorder
	services.ReportReader
}
