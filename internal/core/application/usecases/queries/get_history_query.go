package queries

import (
	"errors"
	"time"

	"freightgate/internal/pkg/guard"
)

var ErrGetHistoryQueryIsNotConstructed = errors.New(
	"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
)

const (
	historyDefaultLimit = 50
	historyMaxLimit     = 200
)

// GetHistoryQuery lists recent consignments, newest first, optionally scoped
// to one transfer.
//
// Example:
//
//	query := NewGetHistoryQuery(9123, 50)
//	handler := NewGetHistoryQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
type GetHistoryQuery struct {
	transferID int64
	limit      int

	guard guard.ConstructorGuard
}

// NewGetHistoryQuery creates a history query. A transferID of zero means all
// transfers; limits outside 1..200 fall back to 50.
func NewGetHistoryQuery(transferID int64, limit int) GetHistoryQuery {
	if limit < 1 || limit > historyMaxLimit {
		limit = historyDefaultLimit
	}

	return GetHistoryQuery{
		transferID: transferID,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// TransferID returns the transfer filter, zero for all.
func (q GetHistoryQuery) TransferID() int64 {
	return q.transferID
}

// Limit returns the clamped row limit.
func (q GetHistoryQuery) Limit() int {
	return q.limit
}

// GetHistoryQueryResponse is one consignment row for display and export.
type GetHistoryQueryResponse struct {
	ID             string    `json:"id"`
	TransferID     int64     `json:"transfer_id"`
	Carrier        string    `json:"carrier"`
	Service        string    `json:"service"`
	Status         string    `json:"status"`
	Mode           string    `json:"mode"`
	CostTotal      *float64  `json:"cost_total"`
	TrackingNumber string    `json:"tracking_number"`
	CreatedAt      time.Time `json:"created_at"`
}
