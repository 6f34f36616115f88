package commands

import (
	"errors"

	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverNameIsRequired = errors.New("driver name is required")
)

// CreateDriverCommand represents a request to register a delivery driver.
// New drivers start available unless a status is supplied.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	name   string
	status driver.Status

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver with the
// given starting status.
func NewCreateDriverCommand(name string, status driver.Status) (CreateDriverCommand, error) {
	driverCommand := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driverCommand.setName(name),
		driverCommand.setStatus(status),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return driverCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Status returns the driver's starting status.
func (c CreateDriverCommand) Status() driver.Status {
	return c.status
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setStatus(status driver.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
