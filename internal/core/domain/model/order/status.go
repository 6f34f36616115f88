package order

import (
	"fmt"

	"burritoops/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct delivery workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> ready ──> out_for_delivery ──> delivered
//	    │           │             │           │              │
//	    └───────────┴─────────────┴───────────┴──────────────┴──> cancelled
//
// delivered and cancelled are terminal; no transition leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status of a freshly created order,
	// waiting to be confirmed and assigned to a driver.
	Pending

	// Confirmed means the order has been accepted and a driver bound.
	Confirmed

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order is packed and waiting for pickup.
	Ready

	// OutForDelivery means the driver is en route to the customer.
	OutForDelivery

	// Delivered means the order reached the customer. Terminal.
	Delivered

	// Cancelled means the order was abandoned before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// Validate checks if the Status value is one of the seven lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the snake_case name of the status, as used in snapshots
// and reports. Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its snake_case string form.
// Used when reconstructing orders from persistence and when statuses
// arrive from external callers.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("%q is not a valid order status", s))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving from s to next is legal.
//
// Legal moves are the single forward step along the delivery chain
// (pending → confirmed → preparing → ready → out_for_delivery →
// delivered) and cancellation from any non-terminal state. Everything
// else, including skipping steps and leaving a terminal state, is
// illegal.
//
// This is a pure decision; it does not touch storage. The batch
// orchestrator consults it before applying any mutation.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if next == Cancelled {
		return true
	}
	return next == s+1
}

// Next returns the following status on the delivery chain.
// ok is false for terminal statuses, which have no successor.
func (s Status) Next() (next Status, ok bool) {
	if s.Validate() != nil || s.IsTerminal() {
		return StatusUnknown, false
	}
	return s + 1, true
}
