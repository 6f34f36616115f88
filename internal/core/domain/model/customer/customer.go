// Package customer contains the Customer entity. Customers are immutable;
// orders embed a full copy of the customer at order time.
package customer

import (
	"errors"
	"fmt"
	"regexp"

	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/pkg/errs"
	"burritoops/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// phonePattern permits digits, whitespace, dashes, parentheses and an
// optional leading plus.
var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

// Customer is a person placing orders.
//
// Invariants:
//   - name and address are non-empty
//   - phone matches the permissive phone-character pattern
type Customer struct {
	id      kernel.EntityID
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer with a freshly generated id.
func NewCustomer(name, phone, address string) (*Customer, error) {
	return RestoreCustomer(kernel.NewEntityID(kernel.CustomerPrefix), name, phone, address)
}

// RestoreCustomer reconstructs a customer from persistence, re-validating
// every field.
func RestoreCustomer(id kernel.EntityID, name, phone, address string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.EntityID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address.
func (c *Customer) Address() string {
	return c.address
}

// IsEqual compares two customers by id.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not a valid phone number", phone))
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
