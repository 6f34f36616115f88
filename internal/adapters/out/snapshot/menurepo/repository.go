package menurepo

import (
	"context"
	"fmt"
	"log/slog"

	"burritoops/internal/adapters/out/snapshot"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/menu"
	"burritoops/internal/core/ports"
	"burritoops/internal/pkg/errs"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Repository implements ports.MenuStore on a snapshot collection.
type Repository struct {
	col *snapshot.Collection[MenuItemDTO]
}

// NewRepository creates a menu item store. path may be empty for a
// memory-only store.
func NewRepository(path string, logger *slog.Logger) *Repository {
	collator := collate.New(language.English, collate.IgnoreCase)

	return &Repository{
		col: snapshot.NewCollection(
			path,
			func(d MenuItemDTO) string { return d.ID },
			func(a, b MenuItemDTO) bool {
				if cmp := collator.CompareString(a.Name, b.Name); cmp != 0 {
					return cmp < 0
				}
				return a.ID < b.ID
			},
			logger.With("store", "menu"),
		),
	}
}

// Create builds a new menu item through the domain factory and stores it.
func (r *Repository) Create(
	_ context.Context, name string, price float64, description string,
) (*menu.MenuItem, error) {
	m, err := menu.NewMenuItem(name, price, description)
	if err != nil {
		return nil, err
	}
	if err := r.col.Put(fromDomain(m)); err != nil {
		return nil, err
	}
	return m, nil
}

// Get retrieves a menu item by id.
func (r *Repository) Get(_ context.Context, id kernel.EntityID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.col.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("menu item", id.String())
	}
	return toDomain(dto)
}

// Delete removes the menu item; false (no error) when the id is absent.
// Order lines keep their embedded snapshots regardless.
func (r *Repository) Delete(_ context.Context, id kernel.EntityID) (bool, error) {
	return r.col.Delete(id.String())
}

// List returns all menu items in name order.
func (r *Repository) List(_ context.Context) ([]*menu.MenuItem, error) {
	dtos := r.col.Match(nil)

	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, nil
}

// Count returns the number of stored menu items.
func (r *Repository) Count(_ context.Context) int {
	return r.col.Count()
}

// Exists reports whether the id is stored.
func (r *Repository) Exists(_ context.Context, id kernel.EntityID) bool {
	return r.col.Exists(id.String())
}

// Clear removes every menu item, returning the number removed.
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
			return 0, fmt.Errorf("validate loaded menu items: %w", err)
		}
	}
	return n, nil
}

var _ ports.MenuStore = (*Repository)(nil)
