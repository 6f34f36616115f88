package ports

import (
	"context"

	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/menu"
)

// MenuStore is the persistence contract for menu items. Menu items are
// immutable, so the contract has no Update; deleting one never touches the
// snapshots embedded in historical orders.
//
// List returns items sorted by name ascending (locale-aware).
type MenuStore interface {
	Create(ctx context.Context, name string, price float64, description string) (*menu.MenuItem, error)
	Get(ctx context.Context, id kernel.EntityID) (*menu.MenuItem, error)
	Delete(ctx context.Context, id kernel.EntityID) (bool, error)
	List(ctx context.Context) ([]*menu.MenuItem, error)
	Count(ctx context.Context) int
	Exists(ctx context.Context, id kernel.EntityID) bool
	Clear(ctx context.Context) (int, error)
	Save(ctx context.Context) error
	Load(ctx context.Context) (int, error)
}
