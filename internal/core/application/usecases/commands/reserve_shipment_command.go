package commands

import (
	"errors"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/ports"
	"freightgate/internal/pkg/guard"
)

var (
	ErrReserveShipmentCommandIsNotConstructed = errors.New(
		"ReserveShipmentCommand must be created via NewReserveShipmentCommand constructor",
	)
	ErrServiceIsRequired = errors.New("payload service is required")
	ErrPayloadIsRequired = errors.New("payload is required")
)

// ReserveShipmentCommand represents a request to reserve a shipment slot with a
// carrier before a label is committed. Carries the caller's payload untouched so
// the carrier adapter sees exactly what the client sent.
//
// Example:
//
//	cmd, err := NewReserveShipmentCommand(carrier.NZPost, payload, 9123, 42, cfg)
//	if err != nil {
//	    return fmt.Errorf("invalid reservation request: %w", err)
//	}
//
//	handler := NewReserveShipmentCommandHandler(registryFactory, repo, clock)
//	result, err := handler.Handle(ctx, cmd)
type ReserveShipmentCommand struct { //nolint:recvcheck //using for validation
	carrier    carrier.Carrier
	payload    ports.Payload
	transferID int64
	staffID    int64
	config     carrier.GatewayConfig

	guard guard.ConstructorGuard
}

// NewReserveShipmentCommand creates a command to reserve a shipment.
// Validates that the carrier is a known one and the payload names a service.
func NewReserveShipmentCommand(
	crr carrier.Carrier,
	payload ports.Payload,
	transferID int64,
	staffID int64,
	config carrier.GatewayConfig,
) (ReserveShipmentCommand, error) {
	cmd := ReserveShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrier(crr),
		cmd.setPayload(payload),
	); err != nil {
		return ReserveShipmentCommand{}, err
	}

	cmd.transferID = transferID
	cmd.staffID = staffID
	cmd.config = config

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReserveShipmentCommandIsNotConstructed)
}

// Carrier returns the carrier the reservation targets.
func (c ReserveShipmentCommand) Carrier() carrier.Carrier {
	return c.carrier
}

// Payload returns the client payload to forward to the carrier.
func (c ReserveShipmentCommand) Payload() ports.Payload {
	return c.payload
}

// TransferID returns the transfer this reservation belongs to, zero when none.
func (c ReserveShipmentCommand) TransferID() int64 {
	return c.transferID
}

// StaffID returns the authenticated staff member placing the reservation.
func (c ReserveShipmentCommand) StaffID() int64 {
	return c.staffID
}

// Config returns the resolved gateway configuration for this request.
func (c ReserveShipmentCommand) Config() carrier.GatewayConfig {
	return c.config
}

func (c *ReserveShipmentCommand) setCarrier(crr carrier.Carrier) error {
	if err := crr.Validate(); err != nil {
		return err
	}

	c.carrier = crr
	return nil
}

func (c *ReserveShipmentCommand) setPayload(payload ports.Payload) error {
	if payload == nil {
		return ErrPayloadIsRequired
	}

	if payload.Service() == "" {
		return ErrServiceIsRequired
	}

	c.payload = payload
	return nil
}
