package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshop/internal/audit"
	"github.com/mrlokans/bookshop/internal/config"
	"github.com/mrlokans/bookshop/internal/database"
	"github.com/mrlokans/bookshop/internal/database/catalog"
	http_controllers "github.com/mrlokans/bookshop/internal/http"
	"github.com/mrlokans/bookshop/internal/readonly"
	"github.com/mrlokans/bookshop/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the router until SIGINT or SIGTERM, then shuts the server down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// Run opens the store and serves the HTTP API until interrupted.
func Run(cfg *config.Config, version string) error {
	log.Printf("Starting bookshop v%s", version)

	db, err := database.NewDatabase(cfg.Database.DSN, cfg.Database.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	store := services.NewStore(db, catalog.WithBookTitlesPerPublisher(cfg.Catalog.BookTitlesPerPublisher))

	readOnly := readonly.NewMiddleware(cfg.HTTP.ReadOnly)
	if readOnly.IsEnabled() {
		log.Printf("Read-only mode enabled - write requests will be rejected")
	}

	auditor := audit.NewAuditor(cfg.Audit.Dir)
	if auditor.Enabled() {
		log.Printf("Auditing requests to %s", cfg.Audit.Dir)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:    store,
		Database: db,
		Auditor:  auditor,
		ReadOnly: readOnly,
		Version:  version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})
	return nil
}
