package queries

import (
	"errors"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/pkg/guard"
)

var ErrGetExpiredQueryIsNotConstructed = errors.New(
	"GetExpiredQuery must be created via NewGetExpiredQuery constructor",
)

// GetExpiredQuery lists stale carrier-side reservations awaiting cleanup.
type GetExpiredQuery struct {
	config carrier.GatewayConfig

	guard guard.ConstructorGuard
}

// NewGetExpiredQuery creates a query for expired reservations.
func NewGetExpiredQuery(config carrier.GatewayConfig) GetExpiredQuery {
	return GetExpiredQuery{config: config, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetExpiredQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiredQueryIsNotConstructed)
}

// Config returns the resolved gateway configuration for this request.
func (q GetExpiredQuery) Config() carrier.GatewayConfig {
	return q.config
}
