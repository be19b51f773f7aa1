package queries

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/csv"
	"strconv"

	"gorm.io/gorm"

	"freightgate/internal/core/ports"
)

var exportColumns = []string{
	"id", "transfer_id", "carrier", "service", "status", "mode",
	"cost_total", "tracking_number", "created_at",
}

// ExportHistoryQueryHandler renders consignment history as base64 CSV, so the
// JSON envelope can carry the document without escaping issues.
type ExportHistoryQueryHandler struct {
	history GetHistoryQueryHandler
	clock   ports.Clock
}

// NewExportHistoryQueryHandler creates a handler for CSV exports.
func NewExportHistoryQueryHandler(db *gorm.DB, clock ports.Clock) ExportHistoryQueryHandler {
	return ExportHistoryQueryHandler{history: NewGetHistoryQueryHandler(db), clock: clock}
}

// Handle exports the most recent rows. An empty result yields an empty
// document named labels_empty.csv rather than an error.
func (h ExportHistoryQueryHandler) Handle(
	ctx context.Context, query ExportHistoryQuery,
) (ExportHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportHistoryQueryResponse{}, err
	}

	rows, err := h.listRows(ctx, query)
	if err != nil {
		return ExportHistoryQueryResponse{}, err
	}

	if len(rows) == 0 {
		return ExportHistoryQueryResponse{CSV: "", Filename: "labels_empty.csv", Count: 0}, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err = w.Write(exportColumns); err != nil {
		return ExportHistoryQueryResponse{}, err
	}

	for _, r := range rows {
		cost := ""
		if r.CostTotal != nil {
			cost = strconv.FormatFloat(*r.CostTotal, 'f', 2, 64)
		}

		record := []string{
			r.ID,
			strconv.FormatInt(r.TransferID, 10),
			r.Carrier,
			r.Service,
			r.Status,
			r.Mode,
			cost,
			r.TrackingNumber,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err = w.Write(record); err != nil {
			return ExportHistoryQueryResponse{}, err
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return ExportHistoryQueryResponse{}, err
	}

	return ExportHistoryQueryResponse{
		CSV:      base64.StdEncoding.EncodeToString(buf.Bytes()),
		Filename: "labels_export_" + h.clock().Format("20060102_150405") + ".csv",
		Count:    len(rows),
	}, nil
}

// listRows reuses the history read path with the export's wider limit.
func (h ExportHistoryQueryHandler) listRows(
	ctx context.Context, query ExportHistoryQuery,
) ([]GetHistoryQueryResponse, error) {
	raw := GetHistoryQuery{
		transferID: query.TransferID(),
		limit:      query.Limit(),
		guard:      query.guard,
	}

	return h.history.Handle(ctx, raw)
}
