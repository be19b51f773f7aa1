// Package carrier defines the closed set of courier identities the gateway
// can dispatch to, together with per-carrier configuration and operating mode.
package carrier

import (
	"fmt"

	"freightgate/internal/pkg/errs"
)

// Carrier identifies a courier company. It is a closed enumeration: adapters
// are registered against these values, so an unknown wire code can never reach
// an adapter lookup.
type Carrier int

const (
	// Unknown represents an invalid or undefined carrier.
	// This value (0) helps catch uninitialized Carrier values.
	Unknown Carrier = iota

	// NZPost is the NZ Post courier network.
	NZPost

	// NZCouriers is the NZ Couriers (GSS) network.
	NZCouriers
)

// All returns every valid carrier in stable order. Used when a request asks
// for "all" and the gateway fans out across enabled carriers.
func All() []Carrier {
	return []Carrier{NZPost, NZCouriers}
}

func carrierCodes() map[Carrier]string {
	return map[Carrier]string{
		NZPost:     "nz_post",
		NZCouriers: "nzc",
	}
}

// Parse converts a wire code ("nz_post", "nzc") into a Carrier.
// Returns an error for anything outside the closed set.
func Parse(code string) (Carrier, error) {
	for c, s := range carrierCodes() {
		if s == code {
			return c, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"carrier", fmt.Errorf("%q is not a known carrier code", code))
}

// String returns the wire code for the carrier, or "unknown".
func (c Carrier) String() string {
	if s, ok := carrierCodes()[c]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the carrier is one of the closed set.
func (c Carrier) Validate() error {
	if _, ok := carrierCodes()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"carrier", fmt.Errorf("%d is not a valid carrier", c))
	}
	return nil
}
