package order

import (
	"errors"
	"fmt"

	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/menu"
	"burritoops/internal/pkg/errs"
	"burritoops/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not
// created through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a line item on an order. Besides the menu item reference it
// carries a full snapshot of the menu item taken at order time, so the
// line survives later menu edits and deletions unchanged.
//
// Invariant: quantity is at least 1.
type Item struct {
	menuItemID kernel.EntityID
	quantity   int
	snapshot   *menu.MenuItem

	guard guard.ConstructorGuard
}

// NewItem creates a line item for the given menu item and quantity.
// The menu item is captured by snapshot.
func NewItem(menuItem *menu.MenuItem, quantity int) (Item, error) {
	if err := menuItem.Validate(); err != nil {
		return Item{}, err
	}
	return RestoreItem(menuItem.ID(), quantity, menuItem)
}

// RestoreItem reconstructs a line item from persistence.
func RestoreItem(menuItemID kernel.EntityID, quantity int, snapshot *menu.MenuItem) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setSnapshot(snapshot),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the id of the referenced menu item.
func (i Item) MenuItemID() kernel.EntityID {
	return i.menuItemID
}

// Quantity returns how many units of the item were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Snapshot returns the copy of the menu item taken at order time.
func (i Item) Snapshot() *menu.MenuItem {
	return i.snapshot
}

// Subtotal returns the line total: snapshot price times quantity.
func (i Item) Subtotal() float64 {
	return i.snapshot.Price() * float64(i.quantity)
}

func (i *Item) setMenuItemID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setSnapshot(snapshot *menu.MenuItem) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	i.snapshot = snapshot
	return nil
}
