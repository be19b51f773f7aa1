package queries

import (
	"errors"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/domain/model/parcel"
	"freightgate/internal/pkg/guard"
)

var ErrGetRatesQueryIsNotConstructed = errors.New(
	"GetRatesQuery must be created via NewGetRatesQuery constructor",
)

// CarrierAll selects every enabled carrier in a rates request.
const CarrierAll = "all"

// GetRatesQuery requests rate quotes for a set of packages. The carrier
// selector is either a single carrier code or "all" for a fan-out over every
// enabled carrier.
//
// Example:
//
//	query, err := NewGetRatesQuery("all", packages, options, sendCtx, cfg)
//	if err != nil {
//	    return fmt.Errorf("invalid rates request: %w", err)
//	}
//
//	handler := NewGetRatesQueryHandler(registryFactory, logger)
//	quotes, err := handler.Handle(ctx, query)
type GetRatesQuery struct {
	selection string
	packages  []parcel.Package
	options   parcel.Options
	context   parcel.Context
	config    carrier.GatewayConfig

	guard guard.ConstructorGuard
}

// NewGetRatesQuery creates a rates query. Packages must already be sanitized;
// validation enforces the count, dimension and weight limits.
func NewGetRatesQuery(
	selection string,
	packages []parcel.Package,
	options parcel.Options,
	sendContext parcel.Context,
	config carrier.GatewayConfig,
) (GetRatesQuery, error) {
	if selection == "" {
		selection = CarrierAll
	}

	if err := parcel.ValidatePackages(packages); err != nil {
		return GetRatesQuery{}, err
	}

	return GetRatesQuery{
		selection: selection,
		packages:  packages,
		options:   options,
		context:   sendContext,
		config:    config,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetRatesQueryIsNotConstructed)
}

// Selection returns the carrier selector, "all" or a single carrier code.
func (q GetRatesQuery) Selection() string {
	return q.selection
}

// Packages returns the sanitized packages to quote.
func (q GetRatesQuery) Packages() []parcel.Package {
	return q.packages
}

// Options returns the delivery options.
func (q GetRatesQuery) Options() parcel.Options {
	return q.options
}

// Context returns the send context (addresses, rural, saturday).
func (q GetRatesQuery) Context() parcel.Context {
	return q.context
}

// Config returns the resolved gateway configuration for this request.
func (q GetRatesQuery) Config() carrier.GatewayConfig {
	return q.config
}
