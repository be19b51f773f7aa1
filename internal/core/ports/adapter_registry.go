package ports

import "freightgate/internal/core/domain/model/carrier"

// AdapterRegistry exposes the adapters built for one request's resolved
// configuration.
type AdapterRegistry interface {
	// Adapter returns the adapter for a carrier, failing with the
	// bad_carrier error kind for anything outside the closed set.
	Adapter(c carrier.Carrier) (CarrierAdapter, error)

	// Enabled returns adapters for every enabled carrier, in stable order.
	Enabled() []CarrierAdapter

	// All returns every registered adapter regardless of enablement.
	All() []CarrierAdapter
}

// AdapterRegistryFactory builds a registry from request-scoped configuration,
// so per-outlet credentials reach adapters without process globals.
type AdapterRegistryFactory interface {
	Registry(cfg carrier.GatewayConfig) AdapterRegistry
}
