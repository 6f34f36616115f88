package services

import (
	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/domain/model/order"
)

// TransitionPolicy is a domain service answering whether a proposed order
// status change is legal and what cross-entity side effect it triggers.
//
// The policy is pure: it never touches storage. The batch orchestrator
// consults it against a freshly read order before applying any mutation,
// guarding against acting on a plan computed from stale reads.
//
// The only cross-entity effect the policy defines is the driver-release
// rule: completing a delivery frees the busy driver bound to the order.
type TransitionPolicy struct{}

// NewTransitionPolicy creates a TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// IsLegalTransition reports whether moving an order from current to next
// follows the lifecycle graph.
func (TransitionPolicy) IsLegalTransition(current, next order.Status) bool {
	return current.CanTransitionTo(next)
}

// ShouldReleaseDriver reports whether applying next to the order must move
// its bound driver back to available: the target is delivered, the order
// has an assigned driver, and that driver is currently busy.
func (TransitionPolicy) ShouldReleaseDriver(o *order.Order, next order.Status, d *driver.Driver) bool {
	if next != order.Delivered || o == nil || o.AssignedDriverID() == nil {
		return false
	}
	return d != nil && d.Status() == driver.Busy
}

// CanAssign reports whether a driver may be bound to an order: the order
// is still pending and the driver is available at the moment of binding.
func (TransitionPolicy) CanAssign(o *order.Order, d *driver.Driver) bool {
	if o == nil || d == nil {
		return false
	}
	return o.Status() == order.Pending && d.Status() == driver.Available
}
