package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	healthUp   = "up"
	healthDown = "down"

	healthCheckTimeout = 2 * time.Second
)

// HealthReport is the body of GET /health.
type HealthReport struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Uptime   string            `json:"uptime"`
	ReadOnly bool              `json:"read_only"`
	Checks   map[string]string `json:"checks"`
}

// HealthController pings every named dependency. Any failing ping turns the
// whole report down and the status into 503.
type HealthController struct {
	deps     map[string]Pinger
	version  string
	readOnly bool
	started  time.Time
	timeout  time.Duration
}

func NewHealthController(cfg RouterConfig) *HealthController {
	deps := make(map[string]Pinger)
	if cfg.Database != nil {
		deps["database"] = cfg.Database
	}
	return &HealthController{
		deps:     deps,
		version:  cfg.Version,
		readOnly: cfg.ReadOnly != nil && cfg.ReadOnly.IsEnabled(),
		started:  time.Now(),
		timeout:  healthCheckTimeout,
	}
}

// Status handles GET /health
func (h *HealthController) Status(c *gin.Context) {
	report := HealthReport{
		Status:   healthUp,
		Version:  h.version,
		Uptime:   time.Since(h.started).Round(time.Second).String(),
		ReadOnly: h.readOnly,
		Checks:   make(map[string]string, len(h.deps)),
	}

	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.ping(c.Request.Context(), h.deps[name]); err != nil {
			report.Checks[name] = err.Error()
			report.Status = healthDown
			continue
		}
		report.Checks[name] = healthUp
	}

	code := http.StatusOK
	if report.Status == healthDown {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}

func (h *HealthController) ping(ctx context.Context, dep Pinger) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return dep.Ping(ctx)
}
