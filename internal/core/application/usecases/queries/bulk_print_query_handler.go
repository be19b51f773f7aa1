package queries

import (
	"context"
	"encoding/base64"
	"html"
	"net/url"
	"strings"
)

// BulkPrintQueryHandler builds a self-printing HTML page with one iframe per
// label document. Pure computation: the documents themselves are served by
// the label file host, not the gateway.
type BulkPrintQueryHandler struct{}

// NewBulkPrintQueryHandler creates a handler for bulk print bundles.
func NewBulkPrintQueryHandler() BulkPrintQueryHandler {
	return BulkPrintQueryHandler{}
}

// Handle deduplicates the selected documents and renders the print bundle.
func (h BulkPrintQueryHandler) Handle(
	_ context.Context, query BulkPrintQuery,
) (BulkPrintQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return BulkPrintQueryResponse{}, err
	}

	urls := labelURLs(query.LabelIDs(), query.TrackingNumbers())
	if len(urls) == 0 {
		empty := "<html><body>No labels selected</body></html>"
		return BulkPrintQueryResponse{
			BundleHTML: base64.StdEncoding.EncodeToString([]byte(empty)),
			Count:      0,
		}, nil
	}

	var b strings.Builder
	b.WriteString(`<html><head><title>Bulk Print</title><meta charset="utf-8">`)
	b.WriteString(`<style>body{margin:0;padding:0} .pg{page-break-after:always}</style>`)
	b.WriteString(`</head><body onload="window.print()">`)
	for _, u := range urls {
		b.WriteString(`<div class="pg"><iframe src="`)
		b.WriteString(html.EscapeString(u))
		b.WriteString(`" style="width:100%;height:1000px;border:0"></iframe></div>`)
	}
	b.WriteString(`</body></html>`)

	return BulkPrintQueryResponse{
		BundleHTML: base64.StdEncoding.EncodeToString([]byte(b.String())),
		Count:      len(urls),
	}, nil
}

// labelURLs maps identifiers to document paths, dropping blanks and repeats
// while keeping first-seen order.
func labelURLs(labelIDs, trackingNumbers []string) []string {
	seen := make(map[string]struct{})
	urls := make([]string, 0, len(labelIDs)+len(trackingNumbers))

	add := func(id string) {
		if id == "" {
			return
		}
		u := "/labels/" + url.PathEscape(id) + ".pdf"
		if _, dup := seen[u]; dup {
			return
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}

	for _, id := range labelIDs {
		add(id)
	}
	for _, tn := range trackingNumbers {
		add(tn)
	}

	return urls
}
