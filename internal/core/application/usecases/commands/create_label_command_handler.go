package commands

import (
	"context"
	"errors"
	"time"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/domain/model/consignment"
	"freightgate/internal/core/domain/model/kernel"
	"freightgate/internal/core/ports"
	"freightgate/internal/pkg/errs"
)

// CreateLabelResult carries the carrier's label back to the gateway together
// with the local consignment row identity.
type CreateLabelResult struct {
	ConsignmentID kernel.UUID
	Label         ports.CreateResult
	Simulated     bool
}

// CreateLabelCommandHandler commits a shipment with the carrier adapter and
// moves the consignment to "labelled" status. A label created from an earlier
// reservation upgrades the reserved row in place, so the reserve and create
// steps never produce two consignment rows for one shipment.
type CreateLabelCommandHandler struct {
	registryFactory ports.AdapterRegistryFactory
	consignments    ports.ConsignmentRepository
	clock           ports.Clock
}

// NewCreateLabelCommandHandler creates a handler for label creation.
func NewCreateLabelCommandHandler(
	registryFactory ports.AdapterRegistryFactory,
	consignments ports.ConsignmentRepository,
	clock ports.Clock,
) CreateLabelCommandHandler {
	return CreateLabelCommandHandler{
		registryFactory: registryFactory,
		consignments:    consignments,
		clock:           clock,
	}
}

// Handle creates the label with the carrier and persists the outcome.
// The carrier call happens first: if it fails, nothing is written.
func (h *CreateLabelCommandHandler) Handle(
	ctx context.Context, cmd CreateLabelCommand,
) (CreateLabelResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateLabelResult{}, err
	}

	adapter, err := h.registryFactory.Registry(cmd.Config()).Adapter(cmd.Carrier())
	if err != nil {
		return CreateLabelResult{}, err
	}

	label, err := adapter.Create(ctx, cmd.Payload())
	if err != nil {
		return CreateLabelResult{}, err
	}

	mode := cmd.Config().Carrier(cmd.Carrier()).Mode
	responseSnap := consignment.Snapshot{
		"label_id":        label.LabelID,
		"tracking_number": label.TrackingNumber,
		"url":             label.URL,
	}
	now := h.clock()

	cons, err := h.findReserved(ctx, cmd.Payload().ReservationID())
	if err != nil {
		return CreateLabelResult{}, err
	}

	if cons != nil {
		if err = cons.UpgradeToLabel(label.LabelID, label.TrackingNumber, responseSnap, now); err != nil {
			return CreateLabelResult{}, err
		}
		if err = h.consignments.Update(ctx, cons); err != nil {
			return CreateLabelResult{}, err
		}
	} else {
		cons, err = h.recordLabelled(ctx, cmd, label, responseSnap, mode, now)
		if err != nil {
			return CreateLabelResult{}, err
		}
	}

	return CreateLabelResult{
		ConsignmentID: cons.ID(),
		Label:         label,
		Simulated:     mode != carrier.ModeLive,
	}, nil
}

// findReserved looks up the consignment a reservation produced. A missing row
// is not an error: direct label creation is allowed without reserving first.
func (h *CreateLabelCommandHandler) findReserved(
	ctx context.Context, reservationID string,
) (*consignment.Consignment, error) {
	if reservationID == "" {
		return nil, nil
	}

	cons, err := h.consignments.FindByReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return cons, nil
}

func (h *CreateLabelCommandHandler) recordLabelled(
	ctx context.Context,
	cmd CreateLabelCommand,
	label ports.CreateResult,
	responseSnap consignment.Snapshot,
	mode carrier.Mode,
	now time.Time,
) (*consignment.Consignment, error) {
	cons, err := consignment.NewConsignment(
		kernel.NewUUID(),
		cmd.TransferID(),
		cmd.Carrier(),
		cmd.Payload().Service(),
		label.LabelID,
		cmd.Payload().Total(),
		mode,
		cmd.StaffID(),
		consignment.Snapshot(cmd.Payload()),
		nil,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = cons.UpgradeToLabel(label.LabelID, label.TrackingNumber, responseSnap, now); err != nil {
		return nil, err
	}

	if err = h.consignments.Record(ctx, cons); err != nil {
		return nil, err
	}

	return cons, nil
}
