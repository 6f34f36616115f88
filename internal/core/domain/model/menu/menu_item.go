// Package menu contains the MenuItem entity. Menu items are immutable once
// created; orders embed a full copy of the item at order time so historical
// orders are unaffected by later menu changes.
package menu

import (
	"errors"
	"fmt"

	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/pkg/errs"
	"burritoops/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through NewMenuItem or RestoreMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is a priced item on the menu.
//
// Invariants:
//   - name is non-empty
//   - price is strictly positive
type MenuItem struct {
	id          kernel.EntityID
	name        string
	price       float64
	description string

	guard guard.ConstructorGuard
}

// NewMenuItem creates a menu item with a freshly generated id.
// Description may be empty.
func NewMenuItem(name string, price float64, description string) (*MenuItem, error) {
	return RestoreMenuItem(kernel.NewEntityID(kernel.MenuItemPrefix), name, price, description)
}

// RestoreMenuItem reconstructs a menu item from persistence, re-validating
// every field.
func RestoreMenuItem(id kernel.EntityID, name string, price float64, description string) (*MenuItem, error) {
	item := &MenuItem{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (m *MenuItem) ID() kernel.EntityID {
	return m.id
}

// Name returns the item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the item's price in dollars.
func (m *MenuItem) Price() float64 {
	return m.price
}

// Description returns the item's description, possibly empty.
func (m *MenuItem) Description() string {
	return m.description
}

// IsEqual compares two menu items by id.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *MenuItem) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is not greater than 0", price))
	}
	m.price = price
	return nil
}
