package queries

import (
	"context"
	"log/slog"

	"freightgate/internal/core/ports"
)

// GetExpiredQueryHandler merges each carrier's expired reservation list.
// All registered carriers are asked regardless of enablement, so reservations
// placed before an outlet lost its keys still surface for cleanup. A carrier
// that errors is logged and skipped.
type GetExpiredQueryHandler struct {
	registryFactory ports.AdapterRegistryFactory
	logger          *slog.Logger
}

// NewGetExpiredQueryHandler creates a handler for expired reservation listing.
func NewGetExpiredQueryHandler(
	registryFactory ports.AdapterRegistryFactory, logger *slog.Logger,
) GetExpiredQueryHandler {
	return GetExpiredQueryHandler{registryFactory: registryFactory, logger: logger}
}

// Handle returns expired reservations across all carriers, merged in carrier
// registration order.
func (h GetExpiredQueryHandler) Handle(
	ctx context.Context, query GetExpiredQuery,
) ([]ports.ExpiredTicket, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]ports.ExpiredTicket, 0)
	for _, adapter := range h.registryFactory.Registry(query.Config()).All() {
		tickets, err := adapter.Expired(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "expired: carrier skipped",
				slog.String("carrier", adapter.Carrier().String()), slog.Any("error", err))
			continue
		}
		rows = append(rows, tickets...)
	}

	return rows, nil
}
