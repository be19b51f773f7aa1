package queries

import (
	"errors"

	"freightgate/internal/core/domain/model/parcel"
	"freightgate/internal/pkg/errs"
	"freightgate/internal/pkg/guard"
)

var ErrAuditPackagesQueryIsNotConstructed = errors.New(
	"AuditPackagesQuery must be created via NewAuditPackagesQuery constructor",
)

// AuditPackagesQuery checks a package set for packing problems before label
// purchase: overweight boxes and boxes with nothing assigned to them.
type AuditPackagesQuery struct {
	packages []parcel.Package

	guard guard.ConstructorGuard
}

// NewAuditPackagesQuery creates an audit query. At least one package is
// required; the hard dimension and weight limits do not apply here, auditing
// oversize boxes is the point.
func NewAuditPackagesQuery(packages []parcel.Package) (AuditPackagesQuery, error) {
	if len(packages) == 0 {
		return AuditPackagesQuery{}, errs.NewBadRequestError("No packages provided")
	}

	return AuditPackagesQuery{packages: packages, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuditPackagesQuery) Validate() error {
	return q.guard.Validate(ErrAuditPackagesQueryIsNotConstructed)
}

// Packages returns the packages under audit.
func (q AuditPackagesQuery) Packages() []parcel.Package {
	return q.packages
}

// WeightMeter visualizes one box's weight against the display cap.
type WeightMeter struct {
	Box     int     `json:"box"`
	Kg      float64 `json:"kg"`
	Cap     float64 `json:"cap"`
	Percent int     `json:"pct"`
}

// AuditPackagesQueryResponse carries packing suggestions plus a per-box
// weight meter for the UI.
type AuditPackagesQueryResponse struct {
	Suggestions []string      `json:"suggestions"`
	Meters      []WeightMeter `json:"meters"`
}
