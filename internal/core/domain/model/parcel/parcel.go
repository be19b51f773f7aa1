// Package parcel models the physical packages of a shipment together with the
// delivery options and context that influence pricing. Inputs arrive from
// untrusted callers, so every constructor clamps values to safe minimums
// before any rate math runs downstream.
package parcel

import (
	"freightgate/internal/pkg/errs"
)

const (
	// MaxPackages is the largest package set a single request may carry.
	MaxPackages = 50

	// MaxDimensionCM is the per-dimension ceiling; larger parcels must go
	// through a manual freight process.
	MaxDimensionCM = 200

	// MaxWeightKG is the per-package weight ceiling.
	MaxWeightKG = 50.0

	// DefaultDimFactor is the assumed cubic-cm-per-kg density constant used
	// when converting parcel dimensions into volumetric weight.
	DefaultDimFactor = 5000.0
)

// Package is one physical parcel. Dimensions are whole centimeters clamped to
// at least 1, weight is kilograms clamped to at least 0.01, so downstream
// pricing can never divide by zero or produce a negative cost.
type Package struct {
	Length int     `json:"l"`
	Width  int     `json:"w"`
	Height int     `json:"h"`
	Weight float64 `json:"kg"`
	Items  int     `json:"items"`
}

// NewPackage builds a sanitized Package from raw caller input.
func NewPackage(length, width, height int, weight float64, items int) Package {
	return Package{
		Length: max(1, length),
		Width:  max(1, width),
		Height: max(1, height),
		Weight: max(0.01, weight),
		Items:  max(0, items),
	}
}

// VolumetricWeight returns the billing weight for the package: the greater of
// its actual weight and its dimensional weight (l×w×h)/dimFactor.
// The result is always >= the actual weight.
func (p Package) VolumetricWeight(dimFactor float64) float64 {
	if dimFactor <= 0 {
		dimFactor = DefaultDimFactor
	}
	dimensional := float64(p.Length*p.Width*p.Height) / dimFactor
	return max(p.Weight, dimensional)
}

// TotalVolumetricWeight sums the volumetric weight of a package set.
func TotalVolumetricWeight(packages []Package, dimFactor float64) float64 {
	var total float64
	for _, p := range packages {
		total += p.VolumetricWeight(dimFactor)
	}
	return total
}

// ValidatePackages runs the fail-fast guards on a sanitized package set.
// It rejects empty sets, oversets, oversize dimensions and overweight parcels
// with distinct error codes, before any carrier or persistence call is made.
func ValidatePackages(packages []Package) error {
	if len(packages) == 0 {
		return errs.NewBadRequestError("No packages provided")
	}
	if len(packages) > MaxPackages {
		return errs.NewTooManyPackagesError()
	}
	for _, p := range packages {
		if p.Length > MaxDimensionCM || p.Width > MaxDimensionCM || p.Height > MaxDimensionCM {
			return errs.NewDimsExceedError()
		}
		if p.Weight > MaxWeightKG {
			return errs.NewWeightExceedError()
		}
	}
	return nil
}

// Options are the delivery service flags that add per-carrier surcharges.
type Options struct {
	Signature        bool `json:"sig"`
	AuthorityToLeave bool `json:"atl"`
	AgeRestricted    bool `json:"age"`
}

// Context carries the shipment-level inputs: free-text origin/destination
// labels, declared value and the delivery-area flags.
type Context struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DeclaredValue float64 `json:"declared"`
	Rural         bool    `json:"rural"`
	Saturday      bool    `json:"saturday"`
}

// NewContext sanitizes a shipment context, clamping declared value to >= 0.
func NewContext(from, to string, declared float64, rural, saturday bool) Context {
	return Context{
		From:          from,
		To:            to,
		DeclaredValue: max(0, declared),
		Rural:         rural,
		Saturday:      saturday,
	}
}
