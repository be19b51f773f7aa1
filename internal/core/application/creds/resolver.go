// Package creds resolves which outlet's carrier credentials apply to a
// request and builds the request-scoped gateway configuration.
package creds

import (
	"context"
	"log/slog"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/ports"
)

// Display metadata per carrier, fixed across outlets.
const (
	nzPostName  = "NZ Post"
	nzPostColor = "#3b82f6"
	nzcName     = "NZ Couriers"
	nzcColor    = "#06b6d4"
)

// CarrierDefaults is the environment-wide fallback for one carrier, used when
// no outlet is identified or an outlet lookup fails.
type CarrierDefaults struct {
	Enabled bool
	// ForcedMode pins the operating mode regardless of credential presence.
	// Empty means "live when credentials are present, simulate otherwise".
	ForcedMode carrier.Mode
	BaseURL    string
	Keys       carrier.Credentials
}

// Defaults is the process-wide fallback configuration derived from
// environment variables at startup and injected into the resolver.
type Defaults struct {
	Rules      string
	DimFactor  float64
	NZPost     CarrierDefaults
	NZCouriers CarrierDefaults
}

// Resolver determines the effective carrier configuration for each request.
//
// Resolution order (first match wins):
//  1. transfer_id -> the transfer's source outlet
//  2. explicit outlet_from_id
//  3. environment defaults
//
// Unresolved outlets silently use the defaults; this is intentional
// degraded-service behavior, not a failure.
type Resolver struct {
	directory ports.OutletDirectory
	defaults  Defaults
	logger    *slog.Logger
}

// NewResolver creates a credential resolver backed by an outlet directory.
func NewResolver(directory ports.OutletDirectory, defaults Defaults, logger *slog.Logger) *Resolver {
	return &Resolver{
		directory: directory,
		defaults:  defaults,
		logger:    logger.With("component", "creds_resolver"),
	}
}

// Resolve builds the gateway configuration for a request carrying an optional
// transfer id and/or direct outlet id.
func (r *Resolver) Resolve(ctx context.Context, transferID, outletFromID int64) carrier.GatewayConfig {
	outletID := int64(0)

	if transferID > 0 {
		id, err := r.directory.OutletForTransfer(ctx, transferID)
		if err != nil {
			r.logger.WarnContext(ctx, "transfer lookup failed", "transfer_id", transferID, "error", err)
		} else if id > 0 {
			outletID = id
			r.logger.InfoContext(ctx, "resolved outlet via transfer", "transfer_id", transferID, "outlet_id", id)
		}
	}

	if outletID == 0 && outletFromID > 0 {
		outletID = outletFromID
		r.logger.InfoContext(ctx, "using direct outlet id", "outlet_id", outletID)
	}

	if outletID == 0 {
		r.logger.InfoContext(ctx, "no outlet specified, using default config")
		return r.DefaultConfig()
	}

	outlet, err := r.directory.OutletByID(ctx, outletID)
	if err != nil || outlet == nil {
		r.logger.WarnContext(ctx, "outlet not found, using fallback config", "outlet_id", outletID, "error", err)
		return r.DefaultConfig()
	}

	return r.outletConfig(outlet)
}

// DefaultConfig returns the environment-wide configuration used when no
// outlet applies.
func (r *Resolver) DefaultConfig() carrier.GatewayConfig {
	d := r.defaults
	return carrier.GatewayConfig{
		Outlet:    nil,
		Rules:     d.Rules,
		DimFactor: d.DimFactor,
		Carriers: map[carrier.Carrier]carrier.Config{
			carrier.NZPost: {
				Name:    nzPostName,
				Color:   nzPostColor,
				Enabled: d.NZPost.Enabled,
				Mode:    defaultMode(d.NZPost.ForcedMode, false),
				BaseURL: d.NZPost.BaseURL,
				Keys:    d.NZPost.Keys,
			},
			carrier.NZCouriers: {
				Name:    nzcName,
				Color:   nzcColor,
				Enabled: d.NZCouriers.Enabled,
				Mode:    defaultMode(d.NZCouriers.ForcedMode, false),
				BaseURL: d.NZCouriers.BaseURL,
				Keys:    d.NZCouriers.Keys,
			},
		},
	}
}

func (r *Resolver) outletConfig(outlet *ports.OutletRecord) carrier.GatewayConfig {
	d := r.defaults

	nzPostKeys := carrier.Credentials{
		APIKey:          outlet.NZPostAPIKey,
		SubscriptionKey: outlet.NZPostSubscriptionKey,
		AccountNumber:   outlet.CourierAccountNumber,
	}
	nzcKeys := carrier.Credentials{
		APIKey:        outlet.GSSToken,
		AccountNumber: outlet.CourierAccountNumber,
	}

	return carrier.GatewayConfig{
		Outlet: &carrier.Outlet{
			ID:       outlet.ID,
			Name:     outlet.Name,
			Address1: outlet.Address1,
			Address2: outlet.Address2,
			City:     outlet.City,
			Region:   outlet.Region,
			Postcode: outlet.Postcode,
		},
		Rules:     d.Rules,
		DimFactor: d.DimFactor,
		Carriers: map[carrier.Carrier]carrier.Config{
			carrier.NZPost: {
				Name:    nzPostName,
				Color:   nzPostColor,
				Enabled: nzPostKeys.APIKey != "" && nzPostKeys.SubscriptionKey != "",
				Mode:    defaultMode(d.NZPost.ForcedMode, nzPostKeys.APIKey != ""),
				BaseURL: d.NZPost.BaseURL,
				Keys:    nzPostKeys,
			},
			carrier.NZCouriers: {
				Name:    nzcName,
				Color:   nzcColor,
				Enabled: nzcKeys.APIKey != "",
				Mode:    defaultMode(d.NZCouriers.ForcedMode, nzcKeys.APIKey != ""),
				BaseURL: d.NZCouriers.BaseURL,
				Keys:    nzcKeys,
			},
		},
	}
}

// defaultMode applies the forced mode when configured, otherwise picks live
// when credentials are present and simulate when they are not.
func defaultMode(forced carrier.Mode, hasKeys bool) carrier.Mode {
	if forced != "" {
		return forced
	}
	if hasKeys {
		return carrier.ModeLive
	}
	return carrier.ModeSimulate
}
