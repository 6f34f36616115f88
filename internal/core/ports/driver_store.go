package ports

import (
	"context"

	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/domain/model/kernel"
)

// DriverFilter narrows List results. The zero value matches every driver.
type DriverFilter struct {
	Status *driver.Status
}

// DriverStore is the persistence contract for delivery drivers.
//
// List returns drivers sorted by name ascending using a locale-aware
// comparison; the ordering is deterministic for equal inputs.
type DriverStore interface {
	// Create builds a new driver through the domain factory, inserts it,
	// persists when file-backed, and returns the stored value.
	Create(ctx context.Context, name string, status driver.Status) (*driver.Driver, error)

	// Get retrieves a driver by id. Returns errs.ErrObjectNotFound for
	// absent ids; the returned driver is a copy.
	Get(ctx context.Context, id kernel.EntityID) (*driver.Driver, error)

	// Update merges the partial request over the stored driver,
	// re-validates, persists, and returns the merged record.
	Update(ctx context.Context, id kernel.EntityID, req driver.UpdateRequest) (*driver.Driver, error)

	// Delete removes the driver; false (no error) when absent.
	Delete(ctx context.Context, id kernel.EntityID) (bool, error)

	// List returns the drivers matching the filter in name order.
	List(ctx context.Context, filter DriverFilter) ([]*driver.Driver, error)

	// Count returns the number of stored drivers.
	Count(ctx context.Context) int

	// Exists reports whether a driver with the given id is stored.
	Exists(ctx context.Context, id kernel.EntityID) bool

	// Clear removes every driver, returning the number removed.
	Clear(ctx context.Context) (int, error)

	// Save writes a full snapshot of the store to its file.
	Save(ctx context.Context) error

	// Load replaces the in-memory index from the snapshot file.
	Load(ctx context.Context) (int, error)
}
