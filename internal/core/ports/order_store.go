// Package ports defines the store contracts between the domain layer and
// the persistence adapters, enabling dependency inversion and testability.
//
// Every store owns an in-memory index keyed by entity id, optionally backed
// by a durable snapshot file. Reads hand out copies, never live references;
// mutation goes through Update with a partial request that is merged and
// re-validated as a whole. Absent ids surface as errs.ErrObjectNotFound.
package ports

import (
	"context"

	"burritoops/internal/core/domain/model/customer"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/order"
)

// OrderFilter narrows List results. Set fields are combined conjunctively
// with equality semantics; the zero value matches every order.
type OrderFilter struct {
	Status           *order.Status
	CustomerID       *kernel.EntityID
	AssignedDriverID *kernel.EntityID
}

// OrderStore is the persistence contract for orders.
//
// List returns orders sorted by creation time descending (newest first);
// the ordering is deterministic for equal inputs.
type OrderStore interface {
	// Create builds a new order through the domain factory, inserts it
	// keyed by id, persists when file-backed, and returns the stored value.
	Create(ctx context.Context, cust *customer.Customer, lines []order.Line, notes string) (*order.Order, error)

	// Get retrieves an order by id. Returns errs.ErrObjectNotFound for
	// absent ids. The returned order is a copy; mutating it does not
	// affect the store.
	Get(ctx context.Context, id kernel.EntityID) (*order.Order, error)

	// Update merges the partial request over the stored order, stamps a
	// fresh updatedAt, re-validates the merged record, persists, and
	// returns it. On validation failure the stored record is untouched.
	Update(ctx context.Context, id kernel.EntityID, req order.UpdateRequest) (*order.Order, error)

	// Delete removes the order. Returns false (and no error) when the id
	// is absent; true after a removal that has been persisted.
	Delete(ctx context.Context, id kernel.EntityID) (bool, error)

	// List returns the orders matching the filter in the store's sort
	// order.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Count returns the number of stored orders.
	Count(ctx context.Context) int

	// Exists reports whether an order with the given id is stored.
	Exists(ctx context.Context, id kernel.EntityID) bool

	// Clear removes every order and persists the empty state, returning
	// the number removed.
	Clear(ctx context.Context) (int, error)

	// Save writes a full snapshot of the store to its file.
	Save(ctx context.Context) error

	// Load replaces the in-memory index from the snapshot file, returning
	// the number of orders loaded. A missing file yields an empty store
	// and no error.
	Load(ctx context.Context) (int, error)
}
