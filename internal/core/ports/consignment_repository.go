package ports

import (
	"context"

	"freightgate/internal/core/domain/model/consignment"
	"freightgate/internal/core/domain/model/kernel"
)

// ConsignmentRepository is the narrow contract of the label persistence
// collaborator. The store provides its own transactional guarantees for each
// call; the gateway never spans a transaction across multiple carriers.
type ConsignmentRepository interface {
	// Record persists a new consignment row in Reserved status.
	Record(ctx context.Context, aggregate *consignment.Consignment) error

	// Update persists lifecycle changes (upgrade-to-label, void) to an
	// existing row.
	Update(ctx context.Context, aggregate *consignment.Consignment) error

	// FindByReservation retrieves the row holding a carrier reservation id.
	FindByReservation(ctx context.Context, reservationID string) (*consignment.Consignment, error)

	// FindByLabel retrieves the row holding a carrier label id.
	FindByLabel(ctx context.Context, labelID string) (*consignment.Consignment, error)

	// FindByTracking retrieves the row holding a tracking number.
	FindByTracking(ctx context.Context, tracking string) (*consignment.Consignment, error)

	// StoreTrackingEvents records tracking events against a tracking number,
	// optionally associated with a consignment row. Returns the stored count.
	StoreTrackingEvents(ctx context.Context, consignmentID *kernel.UUID,
		tracking string, events []consignment.TrackingEvent) (int, error)
}
