// Package nzcouriers implements the CarrierAdapter contract for the
// NZ Couriers (GSS) network. Simulate mode reproduces the reference pricing
// formula exactly; live mode calls the GSS API through the shared transport.
package nzcouriers

import (
	"context"
	"net/http"

	"freightgate/internal/adapters/out/carriers/synth"
	"freightgate/internal/adapters/out/httpx"
	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/domain/model/consignment"
	"freightgate/internal/core/domain/model/parcel"
	"freightgate/internal/core/domain/model/quote"
	"freightgate/internal/core/ports"
)

// Simulate-mode pricing constants. The Sat AM tier always carries the 0.1
// rural adjustment on top of any rural surcharge, matching the carrier's
// published rate card.
const (
	standardBase  = 4.9
	standardPerKg = 1.05
	satAMBase     = 6.2
	satAMPerKg    = 1.15

	ruralSurcharge    = 1.3
	saturdaySurcharge = 1.8
	sigSurcharge      = 0.25
	ageSurcharge      = 0.7

	satAMRuralAdjust = 0.1
)

// Adapter is the NZ Couriers integration.
type Adapter struct {
	cfg    carrier.Config
	client *httpx.Client
	clock  ports.Clock
}

// New creates an NZ Couriers adapter for one request's resolved configuration.
func New(cfg carrier.Config, client *httpx.Client, clock ports.Clock) *Adapter {
	return &Adapter{cfg: cfg, client: client, clock: clock}
}

// Carrier identifies this adapter for registry fan-outs.
func (a *Adapter) Carrier() carrier.Carrier {
	return carrier.NZCouriers
}

func (a *Adapter) live() bool {
	return a.cfg.Mode == carrier.ModeLive && a.cfg.Keys.APIKey != ""
}

func (a *Adapter) headers() map[string]string {
	return map[string]string{
		"Access-Key":     a.cfg.Keys.APIKey,
		"Account-Number": a.cfg.Keys.AccountNumber,
	}
}

func (a *Adapter) row(service, serviceName, eta string, total float64, breakdown quote.Breakdown) quote.RateQuote {
	return quote.RateQuote{
		Carrier:     carrier.NZCouriers.String(),
		CarrierName: a.cfg.Name,
		Service:     service,
		ServiceName: serviceName,
		ETA:         eta,
		Total:       quote.Round2(total),
		Breakdown:   breakdown,
		Color:       a.cfg.Color,
	}
}

// Rates prices the standard and Sat AM tiers against the set's total
// volumetric weight.
func (a *Adapter) Rates(ctx context.Context, packages []parcel.Package, options parcel.Options,
	shipCtx parcel.Context, dimFactor float64) ([]quote.RateQuote, error) {
	if a.live() {
		return a.liveRates(ctx, packages, options, shipCtx)
	}

	kg := parcel.TotalVolumetricWeight(packages, dimFactor)

	var rural, sat, sig, age float64
	if shipCtx.Rural {
		rural = ruralSurcharge
	}
	if shipCtx.Saturday {
		sat = saturdaySurcharge
	}
	if options.Signature {
		sig = sigSurcharge
	}
	if options.AgeRestricted {
		age = ageSurcharge
	}

	standardOpts := rural + sat + sig + age
	satAMOpts := rural + satAMRuralAdjust + sig + age

	return []quote.RateQuote{
		a.row("standard", "Standard", "ETA +1 day",
			standardBase+standardPerKg*kg+standardOpts,
			quote.Breakdown{Base: standardBase, PerKg: standardPerKg * kg, Surcharge: standardOpts}),
		a.row("sat_am", "Sat AM", "ETA Sat AM",
			satAMBase+satAMPerKg*kg+satAMOpts,
			quote.Breakdown{Base: satAMBase, PerKg: satAMPerKg * kg, Surcharge: satAMOpts}),
	}, nil
}

// Reserve allocates a hold. Simulate mode issues synthetic identifiers.
func (a *Adapter) Reserve(ctx context.Context, payload ports.Payload) (ports.ReserveResult, error) {
	if a.live() {
		resp, err := synth.CheckLive(a.client.Do(ctx, http.MethodPost, a.cfg.BaseURL+"/bookings", a.headers(), payload))
		if err != nil {
			return ports.ReserveResult{}, err
		}
		var out ports.ReserveResult
		if err := resp.JSON(&out); err != nil {
			return ports.ReserveResult{}, err
		}
		return out, nil
	}

	return ports.ReserveResult{
		ReservationID: synth.ID("nzc_res_"),
		Number:        synth.Number("C", 4),
	}, nil
}

// Create purchases a label for a reservation or ad hoc.
func (a *Adapter) Create(ctx context.Context, payload ports.Payload) (ports.CreateResult, error) {
	if a.live() {
		resp, err := synth.CheckLive(a.client.Do(ctx, http.MethodPost, a.cfg.BaseURL+"/labels", a.headers(), payload))
		if err != nil {
			return ports.CreateResult{}, err
		}
		var out ports.CreateResult
		if err := resp.JSON(&out); err != nil {
			return ports.CreateResult{}, err
		}
		return out, nil
	}

	return ports.CreateResult{
		LabelID:        synth.ID("nzc_lbl_"),
		TrackingNumber: synth.Number("C", 5),
		URL:            "/labels/" + synth.ID("nzc_") + ".pdf",
	}, nil
}

// Void cancels a label on the carrier side.
func (a *Adapter) Void(ctx context.Context, labelID string) (ports.VoidResult, error) {
	if a.live() {
		resp, err := synth.CheckLive(a.client.Do(ctx, http.MethodDelete, a.cfg.BaseURL+"/labels/"+labelID, a.headers(), nil))
		if err != nil {
			return ports.VoidResult{}, err
		}
		var out ports.VoidResult
		if err := resp.JSON(&out); err != nil {
			return ports.VoidResult{}, err
		}
		return out, nil
	}

	return ports.VoidResult{Voided: true, LabelID: labelID}, nil
}

// Expired lists stale tickets. Simulate mode returns a fixed illustrative
// ticket with a reserved/expiry timestamp pair.
func (a *Adapter) Expired(ctx context.Context) ([]ports.ExpiredTicket, error) {
	if a.live() {
		resp, err := synth.CheckLive(a.client.Do(ctx, http.MethodGet, a.cfg.BaseURL+"/bookings/expired", a.headers(), nil))
		if err != nil {
			return nil, err
		}
		var out []ports.ExpiredTicket
		if err := resp.JSON(&out); err != nil {
			return nil, err
		}
		return out, nil
	}

	now := a.clock()
	return []ports.ExpiredTicket{{
		Carrier:  a.cfg.Name,
		Type:     "Ticket",
		Number:   "C123-998877",
		Reserved: now.AddDate(0, 0, -7).Format("2006-01-02 15:04"),
		Expires:  now.Format("2006-01-02 15:04"),
	}}, nil
}

// Track returns chronological tracking events for a tracking number.
func (a *Adapter) Track(ctx context.Context, tracking string) (ports.TrackResult, error) {
	if a.live() {
		resp, err := synth.CheckLive(a.client.Do(ctx, http.MethodGet, a.cfg.BaseURL+"/tracking/"+tracking, a.headers(), nil))
		if err != nil {
			return ports.TrackResult{}, err
		}
		var out ports.TrackResult
		if err := resp.JSON(&out); err != nil {
			return ports.TrackResult{}, err
		}
		return out, nil
	}

	return ports.TrackResult{
		Tracking: tracking,
		Events: []consignment.TrackingEvent{
			{Timestamp: a.clock(), Description: "In transit"},
		},
	}, nil
}
