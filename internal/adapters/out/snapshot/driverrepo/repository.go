package driverrepo

import (
	"context"
	"fmt"
	"log/slog"

	"burritoops/internal/adapters/out/snapshot"
	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/ports"
	"burritoops/internal/pkg/errs"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Repository implements ports.DriverStore on a snapshot collection.
// Drivers list by name ascending with a locale-aware, case-insensitive
// comparison; ids break ties so listings stay deterministic.
type Repository struct {
	col *snapshot.Collection[DriverDTO]
}

// NewRepository creates a driver store. path may be empty for a
// memory-only store; otherwise it names the snapshot file.
func NewRepository(path string, logger *slog.Logger) *Repository {
	// The collator is only used under the collection's lock.
	collator := collate.New(language.English, collate.IgnoreCase)

	return &Repository{
		col: snapshot.NewCollection(
			path,
			func(d DriverDTO) string { return d.ID },
			func(a, b DriverDTO) bool {
				if cmp := collator.CompareString(a.Name, b.Name); cmp != 0 {
					return cmp < 0
				}
				return a.ID < b.ID
			},
			logger.With("store", "drivers"),
		),
	}
}

// Create builds a new driver through the domain factory and stores it.
func (r *Repository) Create(_ context.Context, name string, status driver.Status) (*driver.Driver, error) {
	d, err := driver.NewDriver(name, status)
	if err != nil {
		return nil, err
	}
	if err := r.col.Put(fromDomain(d)); err != nil {
		return nil, err
	}
	return d, nil
}

// Get retrieves a driver by id, returning a fresh copy materialized from
// the stored record.
func (r *Repository) Get(_ context.Context, id kernel.EntityID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.col.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("driver", id.String())
	}
	return toDomain(dto)
}

// Update merges the partial request over the stored driver, re-validates
// the merged record, and persists it.
func (r *Repository) Update(
	ctx context.Context, id kernel.EntityID, req driver.UpdateRequest,
) (*driver.Driver, error) {
	d, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.Update(req); err != nil {
		return nil, err
	}
	if err := r.col.Put(fromDomain(d)); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes the driver; false (no error) when the id is absent.
func (r *Repository) Delete(_ context.Context, id kernel.EntityID) (bool, error) {
	return r.col.Delete(id.String())
}

// List returns the drivers matching the filter in name order.
func (r *Repository) List(_ context.Context, filter ports.DriverFilter) ([]*driver.Driver, error) {
	dtos := r.col.Match(func(d DriverDTO) bool {
		return filter.Status == nil || d.Status == filter.Status.String()
	})

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

// Count returns the number of stored drivers.
func (r *Repository) Count(_ context.Context) int {
	return r.col.Count()
}

// Exists reports whether the id is stored.
func (r *Repository) Exists(_ context.Context, id kernel.EntityID) bool {
	return r.col.Exists(id.String())
}

// Clear removes every driver, returning the number removed.
func (r *Repository) Clear(_ context.Context) (int, error) {
	return r.col.Clear()
}

// Save writes a full snapshot.
func (r *Repository) Save(_ context.Context) error {
	return r.col.Save()
}

// Load replaces the in-memory index from the snapshot file, re-validating
// every record; one bad record fails the whole load.
func (r *Repository) Load(_ context.Context) (int, error) {
	n, err := r.col.Load()
	if err != nil {
		return 0, err
	}

	for _, dto := range r.col.Match(nil) {
		if _, err := toDomain(dto); err != nil {
			r.col.Reset()
			return 0, fmt.Errorf("validate loaded drivers: %w", err)
		}
	}
	return n, nil
}

var _ ports.DriverStore = (*Repository)(nil)
