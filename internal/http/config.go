package http

import "github.com/mrlokans/bookshop/internal/readonly"

// RouterConfig holds the dependencies of NewRouter.
type RouterConfig struct {
	Store    Store
	Database Pinger // nil leaves the database out of /health
	Auditor  Auditor

	// ReadOnly, when enabled, rejects every write request with 403.
	// nil means writes are allowed.
	ReadOnly *readonly.Middleware

	// Application info
	Version string
}
