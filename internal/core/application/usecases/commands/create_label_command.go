package commands

import (
	"errors"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/ports"
	"freightgate/internal/pkg/guard"
)

var ErrCreateLabelCommandIsNotConstructed = errors.New(
	"CreateLabelCommand must be created via NewCreateLabelCommand constructor",
)

// CreateLabelCommand represents a request to commit a shipment and produce a
// printable label. When the payload references an earlier reservation the
// handler upgrades that consignment row instead of recording a new one.
type CreateLabelCommand struct { //nolint:recvcheck //using for validation
	carrier    carrier.Carrier
	payload    ports.Payload
	transferID int64
	staffID    int64
	config     carrier.GatewayConfig

	guard guard.ConstructorGuard
}

// NewCreateLabelCommand creates a command to generate a shipping label.
// Validates that the carrier is a known one and the payload names a service.
func NewCreateLabelCommand(
	crr carrier.Carrier,
	payload ports.Payload,
	transferID int64,
	staffID int64,
	config carrier.GatewayConfig,
) (CreateLabelCommand, error) {
	cmd := CreateLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrier(crr),
		cmd.setPayload(payload),
	); err != nil {
		return CreateLabelCommand{}, err
	}

	cmd.transferID = transferID
	cmd.staffID = staffID
	cmd.config = config

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLabelCommand) Validate() error {
	return c.guard.Validate(ErrCreateLabelCommandIsNotConstructed)
}

// Carrier returns the carrier the label is created with.
func (c CreateLabelCommand) Carrier() carrier.Carrier {
	return c.carrier
}

// Payload returns the client payload to forward to the carrier.
func (c CreateLabelCommand) Payload() ports.Payload {
	return c.payload
}

// TransferID returns the transfer this label belongs to, zero when none.
func (c CreateLabelCommand) TransferID() int64 {
	return c.transferID
}

// StaffID returns the authenticated staff member creating the label.
func (c CreateLabelCommand) StaffID() int64 {
	return c.staffID
}

// Config returns the resolved gateway configuration for this request.
func (c CreateLabelCommand) Config() carrier.GatewayConfig {
	return c.config
}

func (c *CreateLabelCommand) setCarrier(crr carrier.Carrier) error {
	if err := crr.Validate(); err != nil {
		return err
	}

	c.carrier = crr
	return nil
}

func (c *CreateLabelCommand) setPayload(payload ports.Payload) error {
	if payload == nil {
		return ErrPayloadIsRequired
	}

	if payload.Service() == "" {
		return ErrServiceIsRequired
	}

	c.payload = payload
	return nil
}
