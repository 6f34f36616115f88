package commands

import (
	"errors"

	"burritoops/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errors.New("menu item name is required")
	ErrMenuItemPriceIsInvalid = errors.New("menu item price must be greater than 0")
)

// CreateMenuItemCommand represents a request to add an item to the menu.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	name        string
	price       float64
	description string

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item. The
// description is optional.
func NewCreateMenuItemCommand(
	name string, price float64, description string,
) (CreateMenuItemCommand, error) {
	menuItemCommand := CreateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menuItemCommand.setName(name),
		menuItemCommand.setPrice(price),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	menuItemCommand.description = description
	return menuItemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// Name returns the menu item's display name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the unit price in dollars.
func (c CreateMenuItemCommand) Price() float64 {
	return c.price
}

// Description returns the optional item description.
func (c CreateMenuItemCommand) Description() string {
	return c.description
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return ErrMenuItemPriceIsInvalid
	}

	c.price = price
	return nil
}
