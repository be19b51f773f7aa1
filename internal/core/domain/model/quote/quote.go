// Package quote models carrier rate quotes and the ranking strategies applied
// before quotes are returned to the caller. Quotes are ephemeral: computed per
// request and never persisted.
package quote

import (
	"math"
)

// Breakdown itemizes how a quote's total was assembled, for transparency in
// the client UI.
type Breakdown struct {
	Base      float64 `json:"base"`
	PerKg     float64 `json:"perkg"`
	Surcharge float64 `json:"opts"`
}

// RateQuote is one priced service option from one carrier.
type RateQuote struct {
	Carrier     string    `json:"carrier"`
	CarrierName string    `json:"carrier_name"`
	Service     string    `json:"service"`
	ServiceName string    `json:"service_name"`
	ETA         string    `json:"eta"`
	Total       float64   `json:"total"`
	Breakdown   Breakdown `json:"breakdown"`
	Color       string    `json:"color"`
}

// Round2 rounds a currency amount to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
