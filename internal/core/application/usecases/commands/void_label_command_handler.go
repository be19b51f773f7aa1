package commands

import (
	"context"
	"errors"
	"log/slog"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/ports"
	"freightgate/internal/pkg/errs"
)

// VoidLabelResult reports both sides of a void: the carrier's answer and
// whether the local consignment row was moved to "voided".
type VoidLabelResult struct {
	Void      ports.VoidResult
	DBVoided  bool
	Simulated bool
}

// VoidLabelCommandHandler cancels a label with the carrier and marks the local
// consignment voided. The local update is best-effort: a label the gateway
// never recorded still voids carrier-side, with DBVoided false in the result.
type VoidLabelCommandHandler struct {
	registryFactory ports.AdapterRegistryFactory
	consignments    ports.ConsignmentRepository
	clock           ports.Clock
	logger          *slog.Logger
}

// NewVoidLabelCommandHandler creates a handler for label voiding.
func NewVoidLabelCommandHandler(
	registryFactory ports.AdapterRegistryFactory,
	consignments ports.ConsignmentRepository,
	clock ports.Clock,
	logger *slog.Logger,
) VoidLabelCommandHandler {
	return VoidLabelCommandHandler{
		registryFactory: registryFactory,
		consignments:    consignments,
		clock:           clock,
		logger:          logger,
	}
}

// Handle voids the label with the carrier, then tries to void the local row.
func (h *VoidLabelCommandHandler) Handle(
	ctx context.Context, cmd VoidLabelCommand,
) (VoidLabelResult, error) {
	if err := cmd.Validate(); err != nil {
		return VoidLabelResult{}, err
	}

	adapter, err := h.registryFactory.Registry(cmd.Config()).Adapter(cmd.Carrier())
	if err != nil {
		return VoidLabelResult{}, err
	}

	voided, err := adapter.Void(ctx, cmd.LabelID())
	if err != nil {
		return VoidLabelResult{}, err
	}

	mode := cmd.Config().Carrier(cmd.Carrier()).Mode

	return VoidLabelResult{
		Void:      voided,
		DBVoided:  h.voidLocal(ctx, cmd.LabelID()),
		Simulated: mode != carrier.ModeLive,
	}, nil
}

func (h *VoidLabelCommandHandler) voidLocal(ctx context.Context, labelID string) bool {
	cons, err := h.consignments.FindByLabel(ctx, labelID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "void: consignment lookup failed",
				slog.String("label_id", labelID), slog.Any("error", err))
		}
		return false
	}

	if err = cons.Void(h.clock()); err != nil {
		h.logger.WarnContext(ctx, "void: consignment not voidable",
			slog.String("label_id", labelID), slog.Any("error", err))
		return false
	}

	if err = h.consignments.Update(ctx, cons); err != nil {
		h.logger.WarnContext(ctx, "void: consignment update failed",
			slog.String("label_id", labelID), slog.Any("error", err))
		return false
	}

	return true
}
