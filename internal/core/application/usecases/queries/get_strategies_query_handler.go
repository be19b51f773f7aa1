package queries

import (
	"context"

	"freightgate/internal/core/domain/model/quote"
)

// GetStrategiesQueryHandler returns the fixed ranking strategy list.
type GetStrategiesQueryHandler struct{}

// NewGetStrategiesQueryHandler creates a handler for strategy listing.
func NewGetStrategiesQueryHandler() GetStrategiesQueryHandler {
	return GetStrategiesQueryHandler{}
}

// Handle lists the supported ranking strategies.
func (h GetStrategiesQueryHandler) Handle(
	_ context.Context, query GetStrategiesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return quote.Strategies(), nil
}
