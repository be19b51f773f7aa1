// Package carriers wires concrete courier adapters against the closed carrier
// enumeration. The registry is rebuilt per request from the resolved gateway
// configuration, so per-outlet credentials flow into the adapters without any
// process-global state.
package carriers

import (
	"freightgate/internal/adapters/out/carriers/nzcouriers"
	"freightgate/internal/adapters/out/carriers/nzpost"
	"freightgate/internal/adapters/out/httpx"
	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/ports"
	"freightgate/internal/pkg/errs"
)

// Factory builds per-request adapter registries around a shared transport
// and clock.
type Factory struct {
	client *httpx.Client
	clock  ports.Clock
}

// NewFactory creates an adapter factory.
func NewFactory(client *httpx.Client, clock ports.Clock) *Factory {
	return &Factory{client: client, clock: clock}
}

// Registry holds the adapters for one request's configuration.
type Registry struct {
	adapters map[carrier.Carrier]ports.CarrierAdapter
	config   carrier.GatewayConfig
}

// Registry builds the adapter set for a resolved gateway configuration.
func (f *Factory) Registry(cfg carrier.GatewayConfig) *Registry {
	return &Registry{
		config: cfg,
		adapters: map[carrier.Carrier]ports.CarrierAdapter{
			carrier.NZPost:     nzpost.New(cfg.Carrier(carrier.NZPost), f.client, f.clock),
			carrier.NZCouriers: nzcouriers.New(cfg.Carrier(carrier.NZCouriers), f.client, f.clock),
		},
	}
}

// Adapter returns the adapter registered for a carrier.
// Unknown carriers fail with the bad_carrier error kind.
func (r *Registry) Adapter(c carrier.Carrier) (ports.CarrierAdapter, error) {
	if a, ok := r.adapters[c]; ok {
		return a, nil
	}
	return nil, errs.NewBadCarrierError(c.String())
}

// Enabled returns the adapters for every enabled carrier, in stable order.
func (r *Registry) Enabled() []ports.CarrierAdapter {
	out := make([]ports.CarrierAdapter, 0, len(r.adapters))
	for _, c := range r.config.EnabledCarriers() {
		out = append(out, r.adapters[c])
	}
	return out
}

// All returns every registered adapter in stable carrier order, regardless of
// enablement. Used by the expired listing, which is informational.
func (r *Registry) All() []ports.CarrierAdapter {
	out := make([]ports.CarrierAdapter, 0, len(r.adapters))
	for _, c := range carrier.All() {
		out = append(out, r.adapters[c])
	}
	return out
}

