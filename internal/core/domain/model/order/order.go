package order

import (
	"errors"
	"fmt"
	"time"

	"burritoops/internal/core/domain/model/customer"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/menu"
	"burritoops/internal/pkg/errs"
	"burritoops/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a customer order moving through the delivery lifecycle.
//
// Order follows these invariants:
//   - has a valid unique identifier and a valid customer snapshot
//   - carries at least one line item
//   - totalAmount equals the sum of snapshot price times quantity over the
//     items at creation time; updates never silently recompute it
//   - updatedAt strictly advances on every update
//   - status is always one of the seven lifecycle states
//
// The struct uses private fields to ensure encapsulation; mutation happens
// only through Update, never by direct field assignment.
type Order struct {
	id               kernel.EntityID
	customerID       kernel.EntityID
	customerSnapshot *customer.Customer
	items            []Item
	status           Status
	assignedDriverID *kernel.EntityID
	totalAmount      float64
	createdAt        time.Time
	updatedAt        time.Time
	notes            string

	guard guard.ConstructorGuard
}

// Line pairs a menu item with an ordered quantity. It is the input shape
// for NewOrder; the constructor turns each line into an Item with a
// snapshot of the menu item.
type Line struct {
	MenuItem *menu.MenuItem
	Quantity int
}

// NewOrder creates an order in pending status with a freshly generated id.
// The customer is captured by snapshot, each line becomes an Item carrying
// a snapshot of its menu item, and the total amount is derived as the sum
// of snapshot price times quantity. Notes may be empty.
func NewOrder(cust *customer.Customer, lines []Line, notes string) (*Order, error) {
	if err := cust.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]Item, 0, len(lines))
	total := 0.0
	for _, line := range lines {
		item, err := NewItem(line.MenuItem, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		total += item.Subtotal()
	}

	now := time.Now().UTC()
	return RestoreOrder(
		kernel.NewEntityID(kernel.OrderPrefix),
		cust.ID(),
		cust,
		items,
		Pending,
		nil,
		total,
		now,
		now,
		notes,
	)
}

// RestoreOrder reconstructs an order from persistence, re-validating every
// field. The stored total amount is validated for positivity but never
// recomputed, so historical totals survive load unchanged.
func RestoreOrder(
	id kernel.EntityID,
	customerID kernel.EntityID,
	customerSnapshot *customer.Customer,
	items []Item,
	status Status,
	assignedDriverID *kernel.EntityID,
	totalAmount float64,
	createdAt time.Time,
	updatedAt time.Time,
	notes string,
) (*Order, error) {
	o := &Order{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID, customerSnapshot),
		o.setItems(items),
		o.setStatus(status),
		o.setAssignedDriverID(assignedDriverID),
		o.setTotalAmount(totalAmount),
		o.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// UpdateRequest carries a partial mutation of an order. Nil fields are
// left untouched; set fields are merged over the existing record and the
// whole record is re-validated. This is the only mutation path for orders.
type UpdateRequest struct {
	Status           *Status
	Notes            *string
	AssignedDriverID *kernel.EntityID
}

// Update merges the request into the order and stamps a fresh updatedAt,
// clamped so it strictly advances even under sub-resolution clocks.
// On error the order is left unchanged.
//
// Update validates field constraints only; the legality of a status move
// is the lifecycle policy's concern, consulted by callers before they
// issue the update.
func (o *Order) Update(req UpdateRequest) error {
	if err := o.Validate(); err != nil {
		return err
	}

	updated := *o
	if req.Status != nil {
		if err := updated.setStatus(*req.Status); err != nil {
			return err
		}
	}
	if req.AssignedDriverID != nil {
		if err := updated.setAssignedDriverID(req.AssignedDriverID); err != nil {
			return err
		}
	}
	if req.Notes != nil {
		updated.notes = *req.Notes
	}

	now := time.Now().UTC()
	if !now.After(updated.updatedAt) {
		now = updated.updatedAt.Add(time.Nanosecond)
	}
	updated.updatedAt = now

	*o = updated
	return nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.EntityID {
	return o.id
}

// CustomerID returns the id of the ordering customer.
func (o *Order) CustomerID() kernel.EntityID {
	return o.customerID
}

// CustomerSnapshot returns the copy of the customer taken at order time.
func (o *Order) CustomerSnapshot() *customer.Customer {
	return o.customerSnapshot
}

// Items returns the order's line items. The returned slice is a copy.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the order's current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// AssignedDriverID returns the id of the bound driver, or nil when the
// order is unassigned.
func (o *Order) AssignedDriverID() *kernel.EntityID {
	if o.assignedDriverID == nil {
		return nil
	}
	id := *o.assignedDriverID
	return &id
}

// TotalAmount returns the order total in dollars, derived at creation.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Notes returns the free-form order notes, possibly empty.
func (o *Order) Notes() string {
	return o.notes
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.EntityID, snapshot *customer.Customer) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	o.customerSnapshot = snapshot
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAssignedDriverID(id *kernel.EntityID) error {
	if id == nil {
		o.assignedDriverID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	driverID := *id
	o.assignedDriverID = &driverID
	return nil
}

func (o *Order) setTotalAmount(total float64) error {
	if total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%v is not greater than 0", total))
	}
	o.totalAmount = total
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updatedAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("updatedAt",
			fmt.Errorf("updatedAt %s precedes createdAt %s", updatedAt, createdAt))
	}
	o.createdAt = createdAt.UTC()
	o.updatedAt = updatedAt.UTC()
	return nil
}
