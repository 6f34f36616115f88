package commands

import (
	"errors"

	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/pkg/guard"
)

var (
	ErrProgressionActionIsNotConstructed = errors.New(
		"ProgressionAction must be created via NewProgressionAction constructor",
	)
	ErrProgressOrdersCommandIsNotConstructed = errors.New(
		"ProgressOrdersCommand must be created via NewProgressOrdersCommand constructor",
	)
)

// ProgressionAction proposes moving one order from an expected status to
// the next one. The expected status captures what the planner observed;
// the handler skips the action when the store disagrees at execution time.
type ProgressionAction struct {
	orderID  kernel.EntityID
	expected order.Status
	next     order.Status

	guard guard.ConstructorGuard
}

// NewProgressionAction creates a progression proposal. Legality of the
// expected-to-next move is decided at execution time against the freshly
// read order, not here; the constructor only rejects malformed input.
func NewProgressionAction(
	orderID kernel.EntityID, expected, next order.Status,
) (ProgressionAction, error) {
	if err := errors.Join(
		orderID.Validate(),
		expected.Validate(),
		next.Validate(),
	); err != nil {
		return ProgressionAction{}, err
	}

	return ProgressionAction{
		orderID:  orderID,
		expected: expected,
		next:     next,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the action was created through the constructor.
func (a ProgressionAction) Validate() error {
	return a.guard.Validate(ErrProgressionActionIsNotConstructed)
}

// OrderID returns the target order.
func (a ProgressionAction) OrderID() kernel.EntityID {
	return a.orderID
}

// Expected returns the order status the planner observed.
func (a ProgressionAction) Expected() order.Status {
	return a.expected
}

// Next returns the status the action moves the order to.
func (a ProgressionAction) Next() order.Status {
	return a.next
}

// ProgressOrdersCommand is a batch of progression proposals, applied in
// the order supplied. An empty batch is legal and yields an empty report.
type ProgressOrdersCommand struct {
	actions []ProgressionAction

	guard guard.ConstructorGuard
}

// NewProgressOrdersCommand creates a batch progression command.
// Every action must itself be constructor-built.
func NewProgressOrdersCommand(actions []ProgressionAction) (ProgressOrdersCommand, error) {
	for _, a := range actions {
		if err := a.Validate(); err != nil {
			return ProgressOrdersCommand{}, err
		}
	}

	cmd := ProgressOrdersCommand{
		actions: make([]ProgressionAction, len(actions)),
		guard:   guard.NewConstructorGuard(),
	}
	copy(cmd.actions, actions)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProgressOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProgressOrdersCommandIsNotConstructed)
}

// Actions returns the proposals in submission order.
func (c ProgressOrdersCommand) Actions() []ProgressionAction {
	actions := make([]ProgressionAction, len(c.actions))
	copy(actions, c.actions)
	return actions
}
