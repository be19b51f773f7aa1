package queries

import (
	"context"
	"fmt"
	"math"
)

const (
	// meterCap is the display ceiling for the weight meter, not a hard limit.
	meterCap = 25.0

	// splitAdviceKg is where a box becomes awkward for manual handling.
	splitAdviceKg = 23.0
)

// AuditPackagesQueryHandler computes packing suggestions. Pure computation,
// no upstream calls.
type AuditPackagesQueryHandler struct{}

// NewAuditPackagesQueryHandler creates a handler for package audits.
func NewAuditPackagesQueryHandler() AuditPackagesQueryHandler {
	return AuditPackagesQueryHandler{}
}

// Handle meters every box and flags overweight or empty ones.
func (h AuditPackagesQueryHandler) Handle(
	_ context.Context, query AuditPackagesQuery,
) (AuditPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuditPackagesQueryResponse{}, err
	}

	resp := AuditPackagesQueryResponse{
		Suggestions: make([]string, 0),
		Meters:      make([]WeightMeter, 0, len(query.Packages())),
	}

	for i, p := range query.Packages() {
		box := i + 1
		resp.Meters = append(resp.Meters, WeightMeter{
			Box:     box,
			Kg:      p.Weight,
			Cap:     meterCap,
			Percent: int(math.Min(100, math.Round(p.Weight/meterCap*100))),
		})

		if p.Weight > splitAdviceKg {
			resp.Suggestions = append(resp.Suggestions, fmt.Sprintf(
				"Box %d is %vkg (>23). Consider split or larger box.", box, p.Weight))
		}
		if p.Items <= 0 {
			resp.Suggestions = append(resp.Suggestions, fmt.Sprintf(
				"Box %d has zero items. Remove or assign.", box))
		}
	}

	return resp, nil
}
