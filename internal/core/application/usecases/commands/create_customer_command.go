package commands

import (
	"errors"

	"burritoops/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrCustomerPhoneIsRequired   = errors.New("customer phone is required")
	ErrCustomerAddressIsRequired = errors.New("customer address is required")
)

// CreateCustomerCommand represents a request to register a customer.
// Phone format is validated by the domain model on creation; the command
// only rejects blank fields.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(name, phone, address string) (CreateCustomerCommand, error) {
	customerCommand := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setName(name),
		customerCommand.setPhone(phone),
		customerCommand.setAddress(address),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the customer's contact phone.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateCustomerCommand) setAddress(address string) error {
	if address == "" {
		return ErrCustomerAddressIsRequired
	}

	c.address = address
	return nil
}
