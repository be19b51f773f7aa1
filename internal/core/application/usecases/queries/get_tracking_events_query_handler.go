package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetTrackingEventsQueryHandler reads the stored consignment row for a
// tracking number. A number the gateway never recorded yields a nil row, not
// an error: callers distinguish "unknown here" from lookup failure.
type GetTrackingEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingEventsQueryHandler creates a handler for stored-tracking lookups.
func NewGetTrackingEventsQueryHandler(db *gorm.DB) GetTrackingEventsQueryHandler {
	return GetTrackingEventsQueryHandler{db: db}
}

// Handle returns the row holding the tracking number, nil when absent.
func (h GetTrackingEventsQueryHandler) Handle(
	ctx context.Context, query GetTrackingEventsQuery,
) (*GetHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]GetHistoryQueryResponse, 0, 1)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, transfer_id, carrier, service, status, mode,
			cost_total, tracking_number, created_at
		FROM transfer_shipping_labels
		WHERE tracking_number = ?
		LIMIT 1
	`, query.Tracking()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return &rows[0], nil
}
