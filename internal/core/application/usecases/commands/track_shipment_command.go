package commands

import (
	"errors"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/pkg/guard"
)

var (
	ErrTrackShipmentCommandIsNotConstructed = errors.New(
		"TrackShipmentCommand must be created via NewTrackShipmentCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// TrackShipmentCommand represents a request for a shipment's tracking history.
// Tracking mutates state as a side effect: fetched events are appended to the
// consignment's stored history, which is why this is a command, not a query.
type TrackShipmentCommand struct { //nolint:recvcheck //using for validation
	carrier  carrier.Carrier
	tracking string
	config   carrier.GatewayConfig

	guard guard.ConstructorGuard
}

// NewTrackShipmentCommand creates a command to fetch tracking events.
func NewTrackShipmentCommand(
	crr carrier.Carrier, tracking string, config carrier.GatewayConfig,
) (TrackShipmentCommand, error) {
	cmd := TrackShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrier(crr),
		cmd.setTracking(tracking),
	); err != nil {
		return TrackShipmentCommand{}, err
	}

	cmd.config = config

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TrackShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTrackShipmentCommandIsNotConstructed)
}

// Carrier returns the carrier to query.
func (c TrackShipmentCommand) Carrier() carrier.Carrier {
	return c.carrier
}

// Tracking returns the tracking number to look up.
func (c TrackShipmentCommand) Tracking() string {
	return c.tracking
}

// Config returns the resolved gateway configuration for this request.
func (c TrackShipmentCommand) Config() carrier.GatewayConfig {
	return c.config
}

func (c *TrackShipmentCommand) setCarrier(crr carrier.Carrier) error {
	if err := crr.Validate(); err != nil {
		return err
	}

	c.carrier = crr
	return nil
}

func (c *TrackShipmentCommand) setTracking(tracking string) error {
	if tracking == "" {
		return ErrTrackingNumberIsRequired
	}

	c.tracking = tracking
	return nil
}
