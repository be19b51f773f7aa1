package consignment

import (
	"fmt"

	"freightgate/internal/pkg/errs"
)

// Status represents the lifecycle state of a consignment row.
// It implements a state machine with defined transitions so a label is always
// an upgraded reservation, never a separate record.
//
// State transitions:
//
//	Reserved ──> Labelled ──> Voided
//
// Voided is terminal: voiding is irreversible from the gateway's perspective
// (the carrier side may differ).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Reserved is the initial status: a carrier-side hold exists but nothing
	// has been purchased.
	Reserved

	// Labelled indicates the reservation was converted into a purchased
	// label with a tracking number and printable artifact.
	Labelled

	// Voided indicates the label was cancelled on the carrier side.
	// This is a final state with no further transitions allowed.
	Voided
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Reserved: "reserved",
		Labelled: "labelled",
		Voided:   "voided",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Reserved: "reserved",
		Labelled: "labelled",
		Voided:   "voided",
	}
}

// Validate checks if the Status value is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, used for persistence and
// API responses.
func (s Status) String() string {
	if name, ok := getStatusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// StatusFromString parses a persisted status name back into a Status.
func StatusFromString(name string) (Status, error) {
	for status, s := range getValidStatusStrings() {
		if s == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status name", name))
}
