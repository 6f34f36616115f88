// Package menurepo provides the snapshot-backed menu item store and its
// persistence DTO.
package menurepo

import (
	"fmt"

	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/menu"
)

// MenuItemDTO is the persisted shape of a menu item.
type MenuItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

func fromDomain(m *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          m.ID().String(),
		Name:        m.Name(),
		Price:       m.Price(),
		Description: m.Description(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.ParseEntityID(kernel.MenuItemPrefix, dto.ID)
	if err != nil {
		return nil, fmt.Errorf("menu item %q: %w", dto.ID, err)
	}
	return menu.RestoreMenuItem(id, dto.Name, dto.Price, dto.Description)
}
