package commands

import (
	"errors"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/pkg/guard"
)

var (
	ErrVoidLabelCommandIsNotConstructed = errors.New(
		"VoidLabelCommand must be created via NewVoidLabelCommand constructor",
	)
	ErrLabelIDIsRequired = errors.New("label id is required")
)

// VoidLabelCommand represents a request to cancel a previously created label.
type VoidLabelCommand struct { //nolint:recvcheck //using for validation
	carrier carrier.Carrier
	labelID string
	config  carrier.GatewayConfig

	guard guard.ConstructorGuard
}

// NewVoidLabelCommand creates a command to void a label.
func NewVoidLabelCommand(
	crr carrier.Carrier, labelID string, config carrier.GatewayConfig,
) (VoidLabelCommand, error) {
	cmd := VoidLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrier(crr),
		cmd.setLabelID(labelID),
	); err != nil {
		return VoidLabelCommand{}, err
	}

	cmd.config = config

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VoidLabelCommand) Validate() error {
	return c.guard.Validate(ErrVoidLabelCommandIsNotConstructed)
}

// Carrier returns the carrier that issued the label.
func (c VoidLabelCommand) Carrier() carrier.Carrier {
	return c.carrier
}

// LabelID returns the carrier label identifier to void.
func (c VoidLabelCommand) LabelID() string {
	return c.labelID
}

// Config returns the resolved gateway configuration for this request.
func (c VoidLabelCommand) Config() carrier.GatewayConfig {
	return c.config
}

func (c *VoidLabelCommand) setCarrier(crr carrier.Carrier) error {
	if err := crr.Validate(); err != nil {
		return err
	}

	c.carrier = crr
	return nil
}

func (c *VoidLabelCommand) setLabelID(labelID string) error {
	if labelID == "" {
		return ErrLabelIDIsRequired
	}

	c.labelID = labelID
	return nil
}
