// Package consignment models the persisted reservation/label rows owned by
// the label store. A consignment begins life as a carrier-side reservation and
// is upgraded in place to a label when purchased; voiding marks it terminal.
package consignment

import (
	"errors"
	"time"

	"freightgate/internal/core/domain/model/carrier"
	"freightgate/internal/core/domain/model/kernel"
	"freightgate/internal/pkg/errs"
	"freightgate/internal/pkg/guard"
)

var (
	// ErrAlreadyLabelled indicates an attempt to upgrade a consignment that
	// already carries a label.
	ErrAlreadyLabelled = errors.New("consignment is already labelled")

	// ErrNotLabelled indicates an attempt to void a consignment that was
	// never upgraded to a label.
	ErrNotLabelled = errors.New("consignment has no label to void")

	// ErrAlreadyVoided indicates an attempt to mutate a voided consignment.
	// Voided is terminal.
	ErrAlreadyVoided = errors.New("consignment is already voided")

	// ErrConsignmentIsNotConstructed indicates that the Consignment was not
	// created via NewConsignment or RestoreConsignment.
	ErrConsignmentIsNotConstructed = errors.New(
		"Consignment must be created via NewConsignment or RestoreConsignment")
)

// Snapshot is an arbitrary request or response capture kept alongside the row
// for auditing. The gateway never interprets its contents.
type Snapshot map[string]any

// Consignment is the aggregate for one reservation/label row. The gateway
// holds only transient read-through views of these rows during a request; the
// label store owns the durable state.
type Consignment struct {
	id            kernel.UUID
	transferID    int64
	carrier       carrier.Carrier
	service       string
	reservationID string
	labelID       string
	trackingNum   string
	status        Status
	cost          *float64
	mode          carrier.Mode
	staffID       int64
	requestSnap   Snapshot
	responseSnap  Snapshot
	createdAt     time.Time
	updatedAt     time.Time

	guard guard.ConstructorGuard
}

// NewConsignment creates a consignment in Reserved status from a carrier-side
// reservation. Cost is optional (nil when the caller declared no total).
func NewConsignment(
	id kernel.UUID,
	transferID int64,
	crr carrier.Carrier,
	service string,
	reservationID string,
	cost *float64,
	mode carrier.Mode,
	staffID int64,
	requestSnap Snapshot,
	responseSnap Snapshot,
	now time.Time,
) (*Consignment, error) {
	c := &Consignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setCarrier(crr),
		c.setService(service),
		c.setReservationID(reservationID),
	); err != nil {
		return nil, err
	}

	c.transferID = transferID
	c.cost = cost
	c.mode = mode
	c.staffID = staffID
	c.requestSnap = requestSnap
	c.responseSnap = responseSnap
	c.status = Reserved
	c.createdAt = now
	c.updatedAt = now
	return c, nil
}

// RestoreConsignment reconstructs a consignment from persistent storage in
// whatever lifecycle state it was saved, including label and tracking fields.
func RestoreConsignment(
	id kernel.UUID,
	transferID int64,
	crr carrier.Carrier,
	service string,
	reservationID string,
	labelID string,
	trackingNum string,
	status Status,
	cost *float64,
	mode carrier.Mode,
	staffID int64,
	requestSnap Snapshot,
	responseSnap Snapshot,
	createdAt time.Time,
	updatedAt time.Time,
) (*Consignment, error) {
	c := &Consignment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setCarrier(crr),
		c.setService(service),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	c.transferID = transferID
	c.reservationID = reservationID
	c.labelID = labelID
	c.trackingNum = trackingNum
	c.status = status
	c.cost = cost
	c.mode = mode
	c.staffID = staffID
	c.requestSnap = requestSnap
	c.responseSnap = responseSnap
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c, nil
}

// ID returns the surrogate id of the persisted row.
func (c *Consignment) ID() kernel.UUID { return c.id }

// TransferID returns the stock transfer this consignment belongs to, 0 when
// the shipment was created ad hoc.
func (c *Consignment) TransferID() int64 { return c.transferID }

// Carrier returns the courier the consignment was placed with.
func (c *Consignment) Carrier() carrier.Carrier { return c.carrier }

// Service returns the carrier service tier code.
func (c *Consignment) Service() string { return c.service }

// ReservationID returns the carrier-issued reservation identifier.
func (c *Consignment) ReservationID() string { return c.reservationID }

// LabelID returns the carrier-issued label id, empty while only Reserved.
func (c *Consignment) LabelID() string { return c.labelID }

// TrackingNumber returns the tracking number, empty while only Reserved.
func (c *Consignment) TrackingNumber() string { return c.trackingNum }

// Status returns the lifecycle state of the consignment.
func (c *Consignment) Status() Status { return c.status }

// Cost returns the declared total, nil when none was supplied.
func (c *Consignment) Cost() *float64 { return c.cost }

// Mode returns the operating mode the row was created under, so callers can
// distinguish test runs from real purchases.
func (c *Consignment) Mode() carrier.Mode { return c.mode }

// StaffID returns the staff identity that created the consignment.
func (c *Consignment) StaffID() int64 { return c.staffID }

// RequestSnapshot returns the audit capture of the originating request.
func (c *Consignment) RequestSnapshot() Snapshot { return c.requestSnap }

// ResponseSnapshot returns the audit capture of the carrier response.
func (c *Consignment) ResponseSnapshot() Snapshot { return c.responseSnap }

// CreatedAt returns when the row was first recorded.
func (c *Consignment) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the row last changed.
func (c *Consignment) UpdatedAt() time.Time { return c.updatedAt }

// UpgradeToLabel converts the reservation into a purchased label in place.
// The same row keeps its identity; only the label fields and status change.
func (c *Consignment) UpgradeToLabel(labelID, trackingNum string, responseSnap Snapshot, now time.Time) error {
	if c.status == Voided {
		return ErrAlreadyVoided
	}
	if c.status == Labelled {
		return ErrAlreadyLabelled
	}
	if labelID == "" {
		return errs.NewValueIsRequiredError("labelID")
	}
	if trackingNum == "" {
		return errs.NewValueIsRequiredError("trackingNum")
	}

	c.labelID = labelID
	c.trackingNum = trackingNum
	if responseSnap != nil {
		c.responseSnap = responseSnap
	}
	c.status = Labelled
	c.updatedAt = now
	return nil
}

// Void marks a labelled consignment terminal. Voiding a voided row fails;
// there is no way back once the carrier accepted the void.
func (c *Consignment) Void(now time.Time) error {
	if c.status == Voided {
		return ErrAlreadyVoided
	}
	if c.status != Labelled {
		return ErrNotLabelled
	}

	c.status = Voided
	c.updatedAt = now
	return nil
}

// IsEqual compares consignments by identity.
func (c *Consignment) IsEqual(other *Consignment) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// Validate checks that the aggregate was created via a constructor.
func (c *Consignment) Validate() error {
	if c == nil {
		return ErrConsignmentIsNotConstructed
	}
	return c.guard.Validate(ErrConsignmentIsNotConstructed)
}

func (c *Consignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Consignment) setCarrier(crr carrier.Carrier) error {
	if err := crr.Validate(); err != nil {
		return err
	}
	c.carrier = crr
	return nil
}

func (c *Consignment) setService(service string) error {
	if service == "" {
		return errs.NewValueIsRequiredError("service")
	}
	c.service = service
	return nil
}

func (c *Consignment) setReservationID(reservationID string) error {
	if reservationID == "" {
		return errs.NewValueIsRequiredError("reservationID")
	}
	c.reservationID = reservationID
	return nil
}
