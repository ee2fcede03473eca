package workorder

import (
	"fmt"

	"printstream/internal/pkg/errs"
)

// Status represents the production lifecycle state of a work order.
//
// Intended forward path:
//
//	NeedsProduction ──> InProgress ──> Completed
//	       │                 │
//	       ├──> Subcontracted│
//	       └────> Canceled <─┘
//
// Completed and Canceled are terminal in the intended workflow, and
// Subcontracted is reached from NeedsProduction when the item carries the
// subcontract flag. The rule set does not enforce forward-only progression:
// operators may set any valid status from any other, single-step and
// unconditional. Setting the current status again is a no-op.
//
// Status is a value object that validates state values and provides the wire
// string representations used for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NeedsProduction is the initial status of every work order.
	NeedsProduction

	// InProgress indicates production staff have started on the item.
	InProgress

	// Completed indicates the item has been produced. Terminal in the
	// intended workflow.
	Completed

	// Canceled indicates the item was withdrawn from production. Terminal in
	// the intended workflow.
	Canceled

	// Subcontracted indicates the item was handed to an external vendor.
	Subcontracted
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		NeedsProduction: "Needs Production",
		InProgress:      "In Progress",
		Completed:       "Completed",
		Canceled:        "Canceled",
		Subcontracted:   "Subcontracted",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NeedsProduction: "Needs Production",
		InProgress:      "In Progress",
		Completed:       "Completed",
		Canceled:        "Canceled",
		Subcontracted:   "Subcontracted",
	}
}

// StatusFromString parses a production status from its wire representation.
// Accepts exactly the strings produced by String: "Needs Production",
// "In Progress", "Completed", "Canceled", "Subcontracted".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid production status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the intended production workflow.
// Completed and Canceled items are excluded from the material requirements
// and subcontract worklist aggregates.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}
