package driver

import (
	"errors"

	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/pkg/errs"
	"burritoops/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver represents a delivery driver. Unlike menu items and customers,
// drivers are mutable: their status moves between available, busy, and
// offline as orders are assigned and completed. Mutation happens only
// through Update, never by direct field assignment.
type Driver struct {
	id     kernel.EntityID
	name   string
	status Status

	guard guard.ConstructorGuard
}

// NewDriver creates a driver with a freshly generated id.
func NewDriver(name string, status Status) (*Driver, error) {
	return RestoreDriver(kernel.NewEntityID(kernel.DriverPrefix), name, status)
}

// RestoreDriver reconstructs a driver from persistence, re-validating
// every field.
func RestoreDriver(id kernel.EntityID, name string, status Status) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// UpdateRequest carries a partial mutation of a driver. Nil fields are
// left untouched; set fields are merged over the existing record and the
// whole record is re-validated.
type UpdateRequest struct {
	Name   *string
	Status *Status
}

// Update merges the request into the driver, validating each updated
// field. On error the driver is left unchanged.
func (d *Driver) Update(req UpdateRequest) error {
	if err := d.Validate(); err != nil {
		return err
	}

	updated := *d
	if req.Name != nil {
		if err := updated.setName(*req.Name); err != nil {
			return err
		}
	}
	if req.Status != nil {
		if err := updated.setStatus(*req.Status); err != nil {
			return err
		}
	}

	*d = updated
	return nil
}

// Validate ensures the driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.EntityID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Status returns the driver's current availability.
func (d *Driver) Status() Status {
	return d.status
}

// IsEqual compares two drivers by id.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
