package nzcouriers

import (
	"context"
	"net/http"

	"freightgate/internal/adapters/out/carriers/synth"
	"freightgate/internal/core/domain/model/parcel"
	"freightgate/internal/core/domain/model/quote"
)

// rateWire is the subset of the GSS rating response the gateway consumes.
type rateWire struct {
	Service     string  `json:"service"`
	ServiceName string  `json:"service_name"`
	ETA         string  `json:"eta"`
	Total       float64 `json:"total"`
	Base        float64 `json:"base"`
	PerKg       float64 `json:"perkg"`
	Opts        float64 `json:"opts"`
}

type ratesWire struct {
	Services []rateWire `json:"services"`
}

func (a *Adapter) liveRates(ctx context.Context, packages []parcel.Package,
	options parcel.Options, shipCtx parcel.Context) ([]quote.RateQuote, error) {
	body := map[string]any{
		"packages": packages,
		"options":  options,
		"context":  shipCtx,
	}
	resp, err := synth.CheckLive(a.client.Do(ctx, http.MethodPost, a.cfg.BaseURL+"/rates", a.headers(), body))
	if err != nil {
		return nil, err
	}

	var wire ratesWire
	if err := resp.JSON(&wire); err != nil {
		return nil, err
	}

	quotes := make([]quote.RateQuote, 0, len(wire.Services))
	for _, s := range wire.Services {
		quotes = append(quotes, a.row(s.Service, s.ServiceName, s.ETA, s.Total,
			quote.Breakdown{Base: s.Base, PerKg: s.PerKg, Surcharge: s.Opts}))
	}
	return quotes, nil
}
