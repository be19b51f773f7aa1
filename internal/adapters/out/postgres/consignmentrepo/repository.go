package consignmentrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freightgate/internal/core/domain/model/consignment"
	"freightgate/internal/core/domain/model/kernel"
	"freightgate/internal/pkg/errs"
)

// GormConsignmentRepository implements ConsignmentRepository using GORM.
type GormConsignmentRepository struct {
	db *gorm.DB
}

// NewGormConsignmentRepository creates a new GORM consignment repository.
func NewGormConsignmentRepository(db *gorm.DB) *GormConsignmentRepository {
	return &GormConsignmentRepository{db: db}
}

// Record saves a new consignment to the database.
func (r *GormConsignmentRepository) Record(ctx context.Context, aggregate *consignment.Consignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves lifecycle changes to an existing consignment.
func (r *GormConsignmentRepository) Update(ctx context.Context, aggregate *consignment.Consignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ConsignmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("consignment", aggregate.ID().String())
	}

	return nil
}

// FindByReservation retrieves the consignment holding a carrier reservation id.
func (r *GormConsignmentRepository) FindByReservation(
	ctx context.Context, reservationID string,
) (*consignment.Consignment, error) {
	return r.findBy(ctx, "reservation_id = ?", reservationID)
}

// FindByLabel retrieves the consignment holding a carrier label id.
func (r *GormConsignmentRepository) FindByLabel(
	ctx context.Context, labelID string,
) (*consignment.Consignment, error) {
	return r.findBy(ctx, "label_id = ?", labelID)
}

// FindByTracking retrieves the consignment holding a tracking number.
func (r *GormConsignmentRepository) FindByTracking(
	ctx context.Context, tracking string,
) (*consignment.Consignment, error) {
	return r.findBy(ctx, "tracking_number = ?", tracking)
}

// StoreTrackingEvents appends tracking events for a tracking number.
// Returns the number of rows written.
func (r *GormConsignmentRepository) StoreTrackingEvents(
	ctx context.Context,
	consignmentID *kernel.UUID,
	tracking string,
	events []consignment.TrackingEvent,
) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	dtos := make([]TrackingEventDTO, 0, len(events))
	for _, ev := range events {
		var consID *uuid.UUID
		if consignmentID != nil {
			raw := consignmentID.Bytes()
			consID = &raw
		}

		dtos = append(dtos, TrackingEventDTO{
			ConsignmentID:  consID,
			TrackingNumber: tracking,
			OccurredAt:     ev.Timestamp,
			Description:    ev.Description,
		})
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return 0, err
	}

	return len(dtos), nil
}

func (r *GormConsignmentRepository) findBy(
	ctx context.Context, cond string, value string,
) (*consignment.Consignment, error) {
	if value == "" {
		return nil, errs.NewValueIsRequiredError("lookup value")
	}

	var dto ConsignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, cond, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("consignment", value)
		}
		return nil, err
	}

	return toDomain(dto)
}
