package commands

import (
	"errors"

	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/pkg/guard"
)

var (
	ErrAssignmentActionIsNotConstructed = errors.New(
		"AssignmentAction must be created via NewAssignmentAction constructor",
	)
	ErrAssignOrdersCommandIsNotConstructed = errors.New(
		"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
	)
)

// AssignmentAction proposes binding one driver to one pending order.
// The expected status captures what the planner believed the order's
// status was; the handler skips the action if the store disagrees at
// execution time.
type AssignmentAction struct {
	orderID        kernel.EntityID
	driverID       kernel.EntityID
	expectedStatus order.Status

	guard guard.ConstructorGuard
}

// NewAssignmentAction creates an assignment proposal for the given order
// and driver. Both ids must be valid; expectedStatus is what the planner
// observed when computing the batch, normally order.Pending.
func NewAssignmentAction(
	orderID, driverID kernel.EntityID, expectedStatus order.Status,
) (AssignmentAction, error) {
	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
		expectedStatus.Validate(),
	); err != nil {
		return AssignmentAction{}, err
	}

	return AssignmentAction{
		orderID:        orderID,
		driverID:       driverID,
		expectedStatus: expectedStatus,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the action was created through the constructor.
func (a AssignmentAction) Validate() error {
	return a.guard.Validate(ErrAssignmentActionIsNotConstructed)
}

// OrderID returns the target order.
func (a AssignmentAction) OrderID() kernel.EntityID {
	return a.orderID
}

// DriverID returns the driver to bind.
func (a AssignmentAction) DriverID() kernel.EntityID {
	return a.driverID
}

// ExpectedStatus returns the order status the planner observed.
func (a AssignmentAction) ExpectedStatus() order.Status {
	return a.expectedStatus
}

// AssignOrdersCommand is a batch of assignment proposals, applied in the
// order supplied. An empty batch is legal and yields an empty report.
type AssignOrdersCommand struct {
	actions []AssignmentAction

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a batch assignment command.
// Every action must itself be constructor-built.
func NewAssignOrdersCommand(actions []AssignmentAction) (AssignOrdersCommand, error) {
	for _, a := range actions {
		if err := a.Validate(); err != nil {
			return AssignOrdersCommand{}, err
		}
	}

	cmd := AssignOrdersCommand{
		actions: make([]AssignmentAction, len(actions)),
		guard:   guard.NewConstructorGuard(),
	}
	copy(cmd.actions, actions)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// Actions returns the proposals in submission order.
func (c AssignOrdersCommand) Actions() []AssignmentAction {
	actions := make([]AssignmentAction, len(c.actions))
	copy(actions, c.actions)
	return actions
}
