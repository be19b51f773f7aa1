package carrier

// Mode selects how an adapter executes: against the live carrier API or the
// deterministic built-in simulation.
type Mode string

const (
	// ModeLive calls the real carrier endpoint through the transport layer.
	ModeLive Mode = "live"

	// ModeSimulate prices via the built-in formula and issues synthetic
	// identifiers. This is the authoritative behavior for testing.
	ModeSimulate Mode = "simulate"
)

// Credentials holds the per-outlet secrets a carrier requires. Empty fields
// mean the carrier is not provisioned for the outlet.
type Credentials struct {
	APIKey          string
	SubscriptionKey string
	AccountNumber   string
}

// Config is the resolved per-carrier configuration for one request.
type Config struct {
	Name    string
	Color   string
	Enabled bool
	Mode    Mode
	BaseURL string
	Keys    Credentials
}

// Simulated reports whether the carrier operates in simulate mode.
func (c Config) Simulated() bool {
	return c.Mode != ModeLive
}

// Outlet identifies the physical retail location whose credentials and
// address back a request. Nil inside GatewayConfig means the process-wide
// default configuration is in effect.
type Outlet struct {
	ID       int64
	Name     string
	Address1 string
	Address2 string
	City     string
	Region   string
	Postcode string
}

// GatewayConfig is the full request-scoped configuration: resolved outlet,
// ranking strategy, dim factor and one Config per carrier. It is constructed
// by the credential resolver and injected into handlers; nothing reads
// process globals.
type GatewayConfig struct {
	Outlet    *Outlet
	Rules     string
	DimFactor float64
	Carriers  map[Carrier]Config
}

// Carrier returns the configuration for a carrier, with Enabled=false for
// carriers absent from the map.
func (g GatewayConfig) Carrier(c Carrier) Config {
	return g.Carriers[c]
}

// EnabledCarriers returns the carriers usable for this request, in the stable
// All() order.
func (g GatewayConfig) EnabledCarriers() []Carrier {
	out := make([]Carrier, 0, len(g.Carriers))
	for _, c := range All() {
		if g.Carriers[c].Enabled {
			out = append(out, c)
		}
	}
	return out
}
