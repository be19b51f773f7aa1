package queries

import (
	"errors"

	"freightgate/internal/pkg/errs"
	"freightgate/internal/pkg/guard"
)

var ErrGetTrackingEventsQueryIsNotConstructed = errors.New(
	"GetTrackingEventsQuery must be created via NewGetTrackingEventsQuery constructor",
)

// GetTrackingEventsQuery looks up the stored consignment row for a tracking
// number, including the event history accumulated by track calls.
type GetTrackingEventsQuery struct {
	tracking string

	guard guard.ConstructorGuard
}

// NewGetTrackingEventsQuery creates a stored-tracking lookup query.
func NewGetTrackingEventsQuery(tracking string) (GetTrackingEventsQuery, error) {
	if tracking == "" {
		return GetTrackingEventsQuery{}, errs.NewBadRequestError("tracking is required")
	}

	return GetTrackingEventsQuery{tracking: tracking, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingEventsQueryIsNotConstructed)
}

// Tracking returns the tracking number to look up.
func (q GetTrackingEventsQuery) Tracking() string {
	return q.tracking
}
