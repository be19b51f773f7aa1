package ports

import (
	"context"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/domain/model/consignment"
	"freightgate/internal/core/domain/model/parcel"
	"freightgate/internal/core/domain/model/quote"
)

// Payload is the carrier-specific request body forwarded to an adapter for
// reserve/create operations. The gateway only inspects the well-known keys
// ("service", "total", "reservation_id"); everything else passes through.
type Payload map[string]any

// Service returns the service tier code from the payload, empty if absent.
func (p Payload) Service() string {
	s, _ := p["service"].(string)
	return s
}

// Total returns the caller-declared total, nil if absent or non-numeric.
func (p Payload) Total() *float64 {
	switch v := p["total"].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	default:
		return nil
	}
}

// ReservationID returns the reservation id embedded in the payload, if any.
func (p Payload) ReservationID() string {
	s, _ := p["reservation_id"].(string)
	return s
}

// ReserveResult is a carrier-side hold: an internal reservation identifier
// plus a human-readable consignment number.
type ReserveResult struct {
	ReservationID string `json:"reservation_id"`
	Number        string `json:"number"`
}

// CreateResult is a purchased label: id, tracking number and a link to the
// printable artifact.
type CreateResult struct {
	LabelID        string `json:"label_id"`
	TrackingNumber string `json:"tracking_number"`
	URL            string `json:"url"`
}

// VoidResult reports a carrier-side void.
type VoidResult struct {
	Voided  bool   `json:"voided"`
	LabelID string `json:"label_id"`
}

// ExpiredTicket describes a stale reservation or ticket past its validity
// window on the carrier side.
type ExpiredTicket struct {
	Carrier  string `json:"carrier"`
	Type     string `json:"type"`
	Number   string `json:"number"`
	Reserved string `json:"reserved"`
	Expires  string `json:"expires"`
}

// TrackResult holds the chronological tracking events for a tracking number.
type TrackResult struct {
	Tracking string                      `json:"tracking"`
	Events   []consignment.TrackingEvent `json:"events"`
}

// CarrierAdapter is the contract every courier integration implements. In
// simulate mode the implementations are deterministic and authoritative; in
// live mode they call the real carrier API through the transport layer.
//
// Adapter failures distinguish "carrier rejected" from "carrier unreachable"
// via the errs taxonomy; neither is retried beyond the transport's budget.
type CarrierAdapter interface {
	// Carrier identifies which carrier this adapter speaks for.
	Carrier() carrier.Carrier

	// Rates computes priced service options for a sanitized package set.
	Rates(ctx context.Context, packages []parcel.Package, options parcel.Options,
		shipCtx parcel.Context, dimFactor float64) ([]quote.RateQuote, error)

	// Reserve allocates a carrier-side hold without charging.
	Reserve(ctx context.Context, payload Payload) (ReserveResult, error)

	// Create converts a reservation (or creates ad hoc) into a purchased label.
	Create(ctx context.Context, payload Payload) (CreateResult, error)

	// Void cancels a label on the carrier side.
	Void(ctx context.Context, labelID string) (VoidResult, error)

	// Expired lists stale reservations past their validity window.
	Expired(ctx context.Context) ([]ExpiredTicket, error)

	// Track returns chronological tracking events for a tracking number.
	Track(ctx context.Context, tracking string) (TrackResult, error)
}
