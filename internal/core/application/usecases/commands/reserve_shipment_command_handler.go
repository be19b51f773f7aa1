package commands

import (
	"context"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/domain/model/consignment"
	"freightgate/internal/core/domain/model/kernel"
	"freightgate/internal/core/ports"
)

// ReserveShipmentResult carries the carrier's reservation back to the gateway
// together with the local consignment row identity.
type ReserveShipmentResult struct {
	ConsignmentID kernel.UUID
	Reservation   ports.ReserveResult
	Simulated     bool
}

// ReserveShipmentCommandHandler forwards a reservation to the carrier adapter
// and records the resulting consignment in "reserved" status.
//
// Example:
//
//	handler := NewReserveShipmentCommandHandler(registryFactory, repo, clock)
//	cmd, _ := NewReserveShipmentCommand(carrier.NZPost, payload, 9123, 42, cfg)
//	result, err := handler.Handle(ctx, cmd)
type ReserveShipmentCommandHandler struct {
	registryFactory ports.AdapterRegistryFactory
	consignments    ports.ConsignmentRepository
	clock           ports.Clock
}

// NewReserveShipmentCommandHandler creates a handler for shipment reservations.
func NewReserveShipmentCommandHandler(
	registryFactory ports.AdapterRegistryFactory,
	consignments ports.ConsignmentRepository,
	clock ports.Clock,
) ReserveShipmentCommandHandler {
	return ReserveShipmentCommandHandler{
		registryFactory: registryFactory,
		consignments:    consignments,
		clock:           clock,
	}
}

// Handle reserves a shipment with the carrier and persists the consignment.
// The carrier call happens first: if it fails, nothing is recorded.
func (h *ReserveShipmentCommandHandler) Handle(
	ctx context.Context, cmd ReserveShipmentCommand,
) (ReserveShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReserveShipmentResult{}, err
	}

	adapter, err := h.registryFactory.Registry(cmd.Config()).Adapter(cmd.Carrier())
	if err != nil {
		return ReserveShipmentResult{}, err
	}

	reservation, err := adapter.Reserve(ctx, cmd.Payload())
	if err != nil {
		return ReserveShipmentResult{}, err
	}

	mode := cmd.Config().Carrier(cmd.Carrier()).Mode

	cons, err := consignment.NewConsignment(
		kernel.NewUUID(),
		cmd.TransferID(),
		cmd.Carrier(),
		cmd.Payload().Service(),
		reservation.ReservationID,
		cmd.Payload().Total(),
		mode,
		cmd.StaffID(),
		consignment.Snapshot(cmd.Payload()),
		consignment.Snapshot{
			"reservation_id": reservation.ReservationID,
			"number":         reservation.Number,
		},
		h.clock(),
	)
	if err != nil {
		return ReserveShipmentResult{}, err
	}

	if err = h.consignments.Record(ctx, cons); err != nil {
		return ReserveShipmentResult{}, err
	}

	return ReserveShipmentResult{
		ConsignmentID: cons.ID(),
		Reservation:   reservation,
		Simulated:     mode != carrier.ModeLive,
	}, nil
}
