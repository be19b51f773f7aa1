package queries

import (
	"errors"

	"freightgate/internal/pkg/guard"
)

var ErrExportHistoryQueryIsNotConstructed = errors.New(
	"ExportHistoryQuery must be created via NewExportHistoryQuery constructor",
)

const (
	exportDefaultLimit = 500
	exportMaxLimit     = 2000
)

// ExportHistoryQuery produces the consignment history as a downloadable CSV.
type ExportHistoryQuery struct {
	transferID int64
	limit      int

	guard guard.ConstructorGuard
}

// NewExportHistoryQuery creates an export query. A transferID of zero means
// all transfers; limits outside 1..2000 fall back to 500.
func NewExportHistoryQuery(transferID int64, limit int) ExportHistoryQuery {
	if limit < 1 || limit > exportMaxLimit {
		limit = exportDefaultLimit
	}

	return ExportHistoryQuery{
		transferID: transferID,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ExportHistoryQuery) Validate() error {
	return q.guard.Validate(ErrExportHistoryQueryIsNotConstructed)
}

// TransferID returns the transfer filter, zero for all.
func (q ExportHistoryQuery) TransferID() int64 {
	return q.transferID
}

// Limit returns the clamped row limit.
func (q ExportHistoryQuery) Limit() int {
	return q.limit
}

// ExportHistoryQueryResponse is a base64 CSV document ready for download.
type ExportHistoryQueryResponse struct {
	CSV      string `json:"csv"`
	Filename string `json:"filename"`
	Count    int    `json:"count"`
}
