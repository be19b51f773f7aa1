package queries

import (
	"context"
	"runtime"
	"time"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/ports"
)

const (
	checkEnabled    = "ENABLED"
	checkDisabled   = "DISABLED"
	checkConfigured = "CONFIGURED"
	checkMissing    = "MISSING"
)

// GetHealthQueryHandler assembles the configuration diagnostics clients poll
// to see whether the gateway can place labels. Key material is never echoed,
// only its presence.
type GetHealthQueryHandler struct {
	clock ports.Clock
}

// NewGetHealthQueryHandler creates a handler for health checks.
func NewGetHealthQueryHandler(clock ports.Clock) GetHealthQueryHandler {
	return GetHealthQueryHandler{clock: clock}
}

// Handle returns the diagnostic checks keyed the way dashboards expect them.
func (h GetHealthQueryHandler) Handle(
	_ context.Context, query GetHealthQuery,
) (map[string]any, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cfg := query.Config()

	var outlet any = "DEFAULT_CONFIG"
	if cfg.Outlet != nil {
		outlet = map[string]any{"id": cfg.Outlet.ID, "name": cfg.Outlet.Name}
	}

	checks := map[string]any{
		"runtime": runtime.Version(),
		"time":    h.clock().UTC().Format(time.RFC3339),
		"outlet":  outlet,
	}
	for _, c := range carrier.All() {
		cc := cfg.Carrier(c)
		checks[c.String()] = enablement(cc.Enabled)
		checks[c.String()+"_keys"] = keyState(cc.Keys.APIKey)
	}

	return checks, nil
}

func enablement(enabled bool) string {
	if enabled {
		return checkEnabled
	}
	return checkDisabled
}

func keyState(apiKey string) string {
	if apiKey != "" {
		return checkConfigured
	}
	return checkMissing
}
