package queries

import (
	"errors"

	"freightgate/internal/pkg/guard"
)

var ErrBulkPrintQueryIsNotConstructed = errors.New(
	"BulkPrintQuery must be created via NewBulkPrintQuery constructor",
)

// BulkPrintQuery assembles a print-ready HTML bundle referencing stored label
// documents by label id or tracking number.
type BulkPrintQuery struct {
	labelIDs        []string
	trackingNumbers []string

	guard guard.ConstructorGuard
}

// NewBulkPrintQuery creates a bulk print query. Empty selections are allowed:
// the handler answers with a "no labels" page.
func NewBulkPrintQuery(labelIDs, trackingNumbers []string) BulkPrintQuery {
	return BulkPrintQuery{
		labelIDs:        labelIDs,
		trackingNumbers: trackingNumbers,
		guard:           guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q BulkPrintQuery) Validate() error {
	return q.guard.Validate(ErrBulkPrintQueryIsNotConstructed)
}

// LabelIDs returns the label ids to print.
func (q BulkPrintQuery) LabelIDs() []string {
	return q.labelIDs
}

// TrackingNumbers returns the tracking numbers to print.
func (q BulkPrintQuery) TrackingNumbers() []string {
	return q.trackingNumbers
}

// BulkPrintQueryResponse is a base64 HTML page that prints each label.
type BulkPrintQueryResponse struct {
	BundleHTML string `json:"bundle_html"`
	Count      int    `json:"count"`
}
