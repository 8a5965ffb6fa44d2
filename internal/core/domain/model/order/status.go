package order

import (
	"errors"
	"fmt"

	"retail/internal/pkg/errs"
)

// ErrInvalidStateTransition is the sentinel for every rejected fulfillment
// transition. The concrete error carries the attempted transition and the
// current versus required status.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// StateTransitionError reports a fulfillment transition attempted from the
// wrong status. Transitions are never retryable: the order must be in the
// exact predecessor status.
type StateTransitionError struct {
	Transition string
	Current    Status
	Required   string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s order in status %s, required status is %s",
		ErrInvalidStateTransition, e.Transition, e.Current, e.Required)
}

func (e *StateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

func newStateTransitionError(transition string, current Status, required string) error {
	return &StateTransitionError{Transition: transition, Current: current, Required: required}
}

// Status represents the fulfillment state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │             │
//	   └──────┬──────┘
//	          v
//	      Cancelled
//
// No transition is reversible; each requires its exact predecessor status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created order.
	Pending

	// Processing indicates payment has been accepted and the order is being
	// prepared for shipment.
	Processing

	// Shipped indicates the order has left the warehouse with a tracking
	// number recorded.
	Shipped

	// Delivered indicates the order reached the customer. Final state.
	Delivered

	// Cancelled is the out-of-band terminal state, reachable from Pending
	// and Processing.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses a status name as produced by String.
// Returns an error for names outside the valid status set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the valid statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing (payment accepted)
//
// Any other current status fails with a StateTransitionError.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return Unknown, newStateTransitionError("process payment for", s, Pending.String())
	}
	return Processing, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Processing -> Shipped (order left the warehouse)
//
// Any other current status fails with a StateTransitionError.
func (s Status) Ship() (Status, error) {
	if s != Processing {
		return Unknown, newStateTransitionError("ship", s, Processing.String())
	}
	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered (order reached the customer)
//
// Any other current status fails with a StateTransitionError.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return Unknown, newStateTransitionError("deliver", s, Shipped.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Processing -> Cancelled
//
// Shipped and Delivered orders can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Processing {
		return Unknown, newStateTransitionError("cancel", s,
			fmt.Sprintf("%s or %s", Pending, Processing))
	}
	return Cancelled, nil
}
