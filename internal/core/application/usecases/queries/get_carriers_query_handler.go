package queries

import (
	"context"

	"freightgate/internal/core/domain/model/carrier"
)

// GetCarriersQueryHandler builds the carrier roster from resolved
// configuration. Pure computation, no upstream calls.
type GetCarriersQueryHandler struct{}

// NewGetCarriersQueryHandler creates a handler for carrier roster queries.
func NewGetCarriersQueryHandler() GetCarriersQueryHandler {
	return GetCarriersQueryHandler{}
}

// Handle lists all known carriers in stable order, enabled or not.
func (h GetCarriersQueryHandler) Handle(
	_ context.Context, query GetCarriersQuery,
) ([]GetCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roster := make([]GetCarriersQueryResponse, 0, len(carrier.All()))
	for _, c := range carrier.All() {
		cfg := query.Config().Carrier(c)
		roster = append(roster, GetCarriersQueryResponse{
			Code:    c.String(),
			Name:    cfg.Name,
			Enabled: cfg.Enabled,
			Mode:    string(cfg.Mode),
			Color:   cfg.Color,
		})
	}

	return roster, nil
}
