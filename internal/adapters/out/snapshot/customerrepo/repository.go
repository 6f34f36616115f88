package customerrepo

import (
	"context"
	"fmt"
	"log/slog"

	"burritoops/internal/adapters/out/snapshot"
	"burritoops/internal/core/domain/model/customer"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/ports"
	"burritoops/internal/pkg/errs"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Repository implements ports.CustomerStore on a snapshot collection.
type Repository struct {
	col *snapshot.Collection[CustomerDTO]
}

// NewRepository creates a customer store. path may be empty for a
// memory-only store.
func NewRepository(path string, logger *slog.Logger) *Repository {
	collator := collate.New(language.English, collate.IgnoreCase)

	return &Repository{
		col: snapshot.NewCollection(
			path,
			func(d CustomerDTO) string { return d.ID },
			func(a, b CustomerDTO) bool {
				if cmp := collator.CompareString(a.Name, b.Name); cmp != 0 {
					return cmp < 0
				}
				return a.ID < b.ID
			},
			logger.With("store", "customers"),
		),
	}
}

// Create builds a new customer through the domain factory and stores it.
func (r *Repository) Create(_ context.Context, name, phone, address string) (*customer.Customer, error) {
	c, err := customer.NewCustomer(name, phone, address)
	if err != nil {
		return nil, err
	}
	if err := r.col.Put(fromDomain(c)); err != nil {
		return nil, err
	}
	return c, nil
}

// Get retrieves a customer by id.
func (r *Repository) Get(_ context.Context, id kernel.EntityID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.col.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return toDomain(dto)
}

// Delete removes the customer; false (no error) when the id is absent.
// Orders keep their embedded customer snapshots regardless.
func (r *Repository) Delete(_ context.Context, id kernel.EntityID) (bool, error) {
	return r.col.Delete(id.String())
}

// List returns all customers in name order.
func (r *Repository) List(_ context.Context) ([]*customer.Customer, error) {
	dtos := r.col.Match(nil)

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// Count returns the number of stored customers.
func (r *Repository) Count(_ context.Context) int {
	return r.col.Count()
}

// Exists reports whether the id is stored.
func (r *Repository) Exists(_ context.Context, id kernel.EntityID) bool {
	return r.col.Exists(id.String())
}

// Clear removes every customer, returning the number removed.
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
			return 0, fmt.Errorf("validate loaded customers: %w", err)
		}
	}
	return n, nil
}

var _ ports.CustomerStore = (*Repository)(nil)
