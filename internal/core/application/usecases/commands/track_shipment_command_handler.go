package commands

import (
	"context"
	"errors"
	"log/slog"

	"freightgate/internal/core/domain/model/kernel"
	"freightgate/internal/core/ports"
	"freightgate/internal/pkg/errs"
)

// TrackShipmentResult carries the carrier's tracking events plus how many of
// them were appended to the stored history.
type TrackShipmentResult struct {
	Track  ports.TrackResult
	Stored int
}

// TrackShipmentCommandHandler fetches tracking events from the carrier and
// appends them to the consignment's stored history. Storage is best-effort:
// a failed append still returns the carrier's events to the caller.
type TrackShipmentCommandHandler struct {
	registryFactory ports.AdapterRegistryFactory
	consignments    ports.ConsignmentRepository
	logger          *slog.Logger
}

// NewTrackShipmentCommandHandler creates a handler for shipment tracking.
func NewTrackShipmentCommandHandler(
	registryFactory ports.AdapterRegistryFactory,
	consignments ports.ConsignmentRepository,
	logger *slog.Logger,
) TrackShipmentCommandHandler {
	return TrackShipmentCommandHandler{
		registryFactory: registryFactory,
		consignments:    consignments,
		logger:          logger,
	}
}

// Handle fetches tracking events and stores any the history has not seen yet.
func (h *TrackShipmentCommandHandler) Handle(
	ctx context.Context, cmd TrackShipmentCommand,
) (TrackShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return TrackShipmentResult{}, err
	}

	adapter, err := h.registryFactory.Registry(cmd.Config()).Adapter(cmd.Carrier())
	if err != nil {
		return TrackShipmentResult{}, err
	}

	track, err := adapter.Track(ctx, cmd.Tracking())
	if err != nil {
		return TrackShipmentResult{}, err
	}

	return TrackShipmentResult{
		Track:  track,
		Stored: h.storeEvents(ctx, cmd, track),
	}, nil
}

func (h *TrackShipmentCommandHandler) storeEvents(
	ctx context.Context, cmd TrackShipmentCommand, track ports.TrackResult,
) int {
	if len(track.Events) == 0 {
		return 0
	}

	var consignmentID *kernel.UUID
	cons, err := h.consignments.FindByTracking(ctx, cmd.Tracking())
	switch {
	case err == nil:
		id := cons.ID()
		consignmentID = &id
	case !errors.Is(err, errs.ErrObjectNotFound):
		h.logger.WarnContext(ctx, "track: consignment lookup failed",
			slog.String("tracking", cmd.Tracking()), slog.Any("error", err))
	}

	stored, err := h.consignments.StoreTrackingEvents(ctx, consignmentID, cmd.Tracking(), track.Events)
	if err != nil {
		h.logger.WarnContext(ctx, "track: event storage failed",
			slog.String("tracking", cmd.Tracking()), slog.Any("error", err))
		return 0
	}

	return stored
}
