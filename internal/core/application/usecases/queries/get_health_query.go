package queries

import (
	"errors"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/pkg/guard"
)

var ErrGetHealthQueryIsNotConstructed = errors.New(
	"GetHealthQuery must be created via NewGetHealthQuery constructor",
)

// GetHealthQuery reports the gateway's view of its own configuration:
// runtime, clock, outlet binding, and per-carrier enablement and key state.
type GetHealthQuery struct {
	config carrier.GatewayConfig

	guard guard.ConstructorGuard
}

// NewGetHealthQuery creates a health check query.
func NewGetHealthQuery(config carrier.GatewayConfig) GetHealthQuery {
	return GetHealthQuery{config: config, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetHealthQuery) Validate() error {
	return q.guard.Validate(ErrGetHealthQueryIsNotConstructed)
}

// Config returns the resolved gateway configuration for this request.
func (q GetHealthQuery) Config() carrier.GatewayConfig {
	return q.config
}
