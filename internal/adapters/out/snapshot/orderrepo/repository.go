package orderrepo

import (
	"context"
	"fmt"
	"log/slog"

	"burritoops/internal/adapters/out/snapshot"
	"burritoops/internal/core/domain/model/customer"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/core/ports"
	"burritoops/internal/pkg/errs"
)

// Repository implements ports.OrderStore on a snapshot collection.
// Orders list newest first: creation time descending with id as tie-break,
// so listings are deterministic for equal inputs.
type Repository struct {
	col *snapshot.Collection[OrderDTO]
}

// NewRepository creates an order store. path may be empty for a
// memory-only store; otherwise it names the snapshot file.
func NewRepository(path string, logger *slog.Logger) *Repository {
	return &Repository{
		col: snapshot.NewCollection(
			path,
			func(d OrderDTO) string { return d.ID },
			func(a, b OrderDTO) bool {
				if !a.CreatedAt.Equal(b.CreatedAt) {
					return a.CreatedAt.After(b.CreatedAt)
				}
				return a.ID < b.ID
			},
			logger.With("store", "orders"),
		),
	}
}

// Create builds a new order through the domain factory and stores it.
func (r *Repository) Create(
	_ context.Context, cust *customer.Customer, lines []order.Line, notes string,
) (*order.Order, error) {
	o, err := order.NewOrder(cust, lines, notes)
	if err != nil {
		return nil, err
	}
	if err := r.col.Put(fromDomain(o)); err != nil {
		return nil, err
	}
	return o, nil
}

// Get retrieves an order by id, returning a fresh copy materialized from
// the stored record.
func (r *Repository) Get(_ context.Context, id kernel.EntityID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.col.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return toDomain(dto)
}

// Update merges the partial request over the stored order, re-validates
// the merged record, and persists it. The stored record is untouched when
// the merge fails validation.
func (r *Repository) Update(
	ctx context.Context, id kernel.EntityID, req order.UpdateRequest,
) (*order.Order, error) {
	o, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.Update(req); err != nil {
		return nil, err
	}
	if err := r.col.Put(fromDomain(o)); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete removes the order; false (no error) when the id is absent.
func (r *Repository) Delete(_ context.Context, id kernel.EntityID) (bool, error) {
	return r.col.Delete(id.String())
}

// List returns the orders matching the filter, newest first.
func (r *Repository) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	dtos := r.col.Match(func(d OrderDTO) bool {
		if filter.Status != nil && d.Status != filter.Status.String() {
			return false
		}
		if filter.CustomerID != nil && d.CustomerID != filter.CustomerID.String() {
			return false
		}
		if filter.AssignedDriverID != nil {
			if d.AssignedDriverID == nil || *d.AssignedDriverID != filter.AssignedDriverID.String() {
				return false
			}
		}
		return true
	})

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Count returns the number of stored orders.
func (r *Repository) Count(_ context.Context) int {
	return r.col.Count()
}

// Exists reports whether the id is stored.
func (r *Repository) Exists(_ context.Context, id kernel.EntityID) bool {
	return r.col.Exists(id.String())
}

// Clear removes every order, returning the number removed.
func (r *Repository) Clear(_ context.Context) (int, error) {
	return r.col.Clear()
}

// Save writes a full snapshot.
func (r *Repository) Save(_ context.Context) error {
	return r.col.Save()
}

// Load replaces the in-memory index from the snapshot file. Every loaded
// record is re-validated through the domain constructors; one bad record
// fails the whole load and leaves the store empty.
func (r *Repository) Load(_ context.Context) (int, error) {
	n, err := r.col.Load()
	if err != nil {
		return 0, err
	}

	for _, dto := range r.col.Match(nil) {
		if _, err := toDomain(dto); err != nil {
			r.col.Reset()
			return 0, fmt.Errorf("validate loaded orders: %w", err)
		}
	}
	return n, nil
}

var _ ports.OrderStore = (*Repository)(nil)
