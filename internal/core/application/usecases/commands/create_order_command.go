package commands

import (
	"errors"

	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("an order needs at least one line")
	ErrLineQuantityIsInvalid = errors.New("line quantity must be greater than 0")
)

// OrderLineInput names a menu item and how many of it the customer wants.
// The handler resolves the id against the menu store and snapshots the
// item into the order.
type OrderLineInput struct {
	MenuItemID kernel.EntityID
	Quantity   int
}

// CreateOrderCommand represents a request to place a new order for a
// stored customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, []OrderLineInput{
//	    {MenuItemID: burritoID, Quantity: 2},
//	}, "extra salsa")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.EntityID
	lines      []OrderLineInput
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates
// that the customer id is well formed, at least one line is present, every
// line names a well-formed menu item id, and every quantity is positive.
// Whether the referenced entities exist is the handler's concern.
func NewCreateOrderCommand(
	customerID kernel.EntityID, lines []OrderLineInput, notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.notes = notes
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's id.
func (c CreateOrderCommand) CustomerID() kernel.EntityID {
	return c.customerID
}

// Lines returns the requested menu item ids and quantities.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	lines := make([]OrderLineInput, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Notes returns the free-form order notes, possibly empty.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.EntityID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrLineQuantityIsInvalid
		}
	}

	c.lines = make([]OrderLineInput, len(lines))
	copy(c.lines, lines)
	return nil
}
