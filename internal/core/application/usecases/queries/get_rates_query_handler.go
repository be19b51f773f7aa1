package queries

import (
	"context"
	"log/slog"

	"freightgate/internal/core/domain/model/quote"
	"freightgate/internal/core/ports"
)

// GetRatesQueryHandler fans a rates request out over carrier adapters and
// ranks the merged quotes by the configured strategy.
//
// A fan-out over "all" degrades gracefully: a carrier that errors is logged
// and dropped, so one flaky upstream shortens the list instead of failing the
// whole request. A request for a single named carrier still fails hard.
type GetRatesQueryHandler struct {
	registryFactory ports.AdapterRegistryFactory
	logger          *slog.Logger
}

// NewGetRatesQueryHandler creates a handler for rate quoting.
func NewGetRatesQueryHandler(
	registryFactory ports.AdapterRegistryFactory, logger *slog.Logger,
) GetRatesQueryHandler {
	return GetRatesQueryHandler{registryFactory: registryFactory, logger: logger}
}

// Handle collects quotes from the selected carriers, ranked for display.
func (h GetRatesQueryHandler) Handle(
	ctx context.Context, query GetRatesQuery,
) ([]quote.RateQuote, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	registry := h.registryFactory.Registry(query.Config())
	dimFactor := query.Config().DimFactor

	results := make([]quote.RateQuote, 0)
	for _, adapter := range registry.Enabled() {
		code := adapter.Carrier().String()
		if query.Selection() != CarrierAll && query.Selection() != code {
			continue
		}

		quotes, err := adapter.Rates(ctx, query.Packages(), query.Options(), query.Context(), dimFactor)
		if err != nil {
			if query.Selection() != CarrierAll {
				return nil, err
			}
			h.logger.WarnContext(ctx, "rates: carrier skipped",
				slog.String("carrier", code), slog.Any("error", err))
			continue
		}
		results = append(results, quotes...)
	}

	quote.Rank(query.Config().Rules, results)
	return results, nil
}
