// Package consignmentrepo provides data transfer objects and mapping
// functions for consignment persistence. Implements the repository pattern
// for the consignment aggregate, converting between domain entities and the
// transfer_shipping_labels table.
package consignmentrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/domain/model/consignment"
	"freightgate/internal/core/domain/model/kernel"
)

// ConsignmentDTO represents the database structure for consignment aggregates.
// Reservation id, label id and tracking number are indexed: every lifecycle
// operation after reserve locates its row by one of them.
type ConsignmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransferID       int64     `gorm:"index"`
	Carrier          string
	Service          string
	ReservationID    string `gorm:"index"`
	LabelID          string `gorm:"index"`
	TrackingNumber   string `gorm:"index"`
	Status           string
	CostTotal        *float64
	Mode             string
	StaffID          int64
	RequestSnapshot  []byte `gorm:"type:jsonb"`
	ResponseSnapshot []byte `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for consignment entities.
func (ConsignmentDTO) TableName() string {
	return "transfer_shipping_labels"
}

// TrackingEventDTO represents one stored tracking event. Events accumulate
// append-only; the consignment id is nullable because carriers answer for
// tracking numbers the gateway never issued.
type TrackingEventDTO struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	ConsignmentID  *uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber string     `gorm:"index"`
	OccurredAt     time.Time
	Description    string
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "label_tracking_events"
}

// fromDomain converts a consignment aggregate to its database representation.
func fromDomain(cons *consignment.Consignment) (ConsignmentDTO, error) {
	requestSnap, err := marshalSnapshot(cons.RequestSnapshot())
	if err != nil {
		return ConsignmentDTO{}, err
	}

	responseSnap, err := marshalSnapshot(cons.ResponseSnapshot())
	if err != nil {
		return ConsignmentDTO{}, err
	}

	return ConsignmentDTO{
		ID:               cons.ID().Bytes(),
		TransferID:       cons.TransferID(),
		Carrier:          cons.Carrier().String(),
		Service:          cons.Service(),
		ReservationID:    cons.ReservationID(),
		LabelID:          cons.LabelID(),
		TrackingNumber:   cons.TrackingNumber(),
		Status:           cons.Status().String(),
		CostTotal:        cons.Cost(),
		Mode:             string(cons.Mode()),
		StaffID:          cons.StaffID(),
		RequestSnapshot:  requestSnap,
		ResponseSnapshot: responseSnap,
		CreatedAt:        cons.CreatedAt(),
		UpdatedAt:        cons.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO back into a consignment aggregate.
func toDomain(dto ConsignmentDTO) (*consignment.Consignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	crr, err := carrier.Parse(dto.Carrier)
	if err != nil {
		return nil, err
	}

	status, err := consignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	requestSnap, err := unmarshalSnapshot(dto.RequestSnapshot)
	if err != nil {
		return nil, err
	}

	responseSnap, err := unmarshalSnapshot(dto.ResponseSnapshot)
	if err != nil {
		return nil, err
	}

	return consignment.RestoreConsignment(
		id,
		dto.TransferID,
		crr,
		dto.Service,
		dto.ReservationID,
		dto.LabelID,
		dto.TrackingNumber,
		status,
		dto.CostTotal,
		carrier.Mode(dto.Mode),
		dto.StaffID,
		requestSnap,
		responseSnap,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func marshalSnapshot(snap consignment.Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, nil
	}

	return json.Marshal(snap)
}

func unmarshalSnapshot(raw []byte) (consignment.Snapshot, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var snap consignment.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}

	return snap, nil
}
