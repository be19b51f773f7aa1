package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetHistoryQueryHandler reads recent consignment rows straight from the
// database, bypassing the aggregate for display purposes.
type GetHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetHistoryQueryHandler creates a handler for consignment history.
func NewGetHistoryQueryHandler(db *gorm.DB) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{db: db}
}

// Handle returns the most recent rows, newest first.
func (h GetHistoryQueryHandler) Handle(
	ctx context.Context, query GetHistoryQuery,
) ([]GetHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := make([]GetHistoryQueryResponse, 0)

	tx := h.db.WithContext(ctx)
	if query.TransferID() > 0 {
		tx = tx.Raw(`
			SELECT id, transfer_id, carrier, service, status, mode,
				cost_total, tracking_number, created_at
			FROM transfer_shipping_labels
			WHERE transfer_id = ?
			ORDER BY created_at DESC
			LIMIT ?
		`, query.TransferID(), query.Limit())
	} else {
		tx = tx.Raw(`
			SELECT id, transfer_id, carrier, service, status, mode,
				cost_total, tracking_number, created_at
			FROM transfer_shipping_labels
			ORDER BY created_at DESC
			LIMIT ?
		`, query.Limit())
	}

	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
