package ports

import (
	"context"

	"burritoops/internal/core/domain/model/customer"
	"burritoops/internal/core/domain/model/kernel"
)

// CustomerStore is the persistence contract for customers. Customers are
// immutable, so the contract has no Update.
//
// List returns customers sorted by name ascending (locale-aware).
type CustomerStore interface {
	Create(ctx context.Context, name, phone, address string) (*customer.Customer, error)
	Get(ctx context.Context, id kernel.EntityID) (*customer.Customer, error)
	Delete(ctx context.Context, id kernel.EntityID) (bool, error)
	List(ctx context.Context) ([]*customer.Customer, error)
	Count(ctx context.Context) int
	Exists(ctx context.Context, id kernel.EntityID) bool
	Clear(ctx context.Context) (int, error)
	Save(ctx context.Context) error
	Load(ctx context.Context) (int, error)
}
