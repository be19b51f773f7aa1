package queries

import (
	"errors"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/pkg/guard"
)

var ErrGetCarriersQueryIsNotConstructed = errors.New(
	"GetCarriersQuery must be created via NewGetCarriersQuery constructor",
)

// GetCarriersQuery lists the carriers the gateway knows about, with their
// per-request enablement and mode.
type GetCarriersQuery struct {
	config carrier.GatewayConfig

	guard guard.ConstructorGuard
}

// NewGetCarriersQuery creates a query for the carrier roster.
func NewGetCarriersQuery(config carrier.GatewayConfig) GetCarriersQuery {
	return GetCarriersQuery{config: config, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarriersQueryIsNotConstructed)
}

// Config returns the resolved gateway configuration for this request.
func (q GetCarriersQuery) Config() carrier.GatewayConfig {
	return q.config
}

// GetCarriersQueryResponse describes one carrier for display.
type GetCarriersQueryResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Mode    string `json:"mode"`
	Color   string `json:"color"`
}
