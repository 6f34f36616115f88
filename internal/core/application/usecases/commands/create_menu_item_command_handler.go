package commands

import (
	"context"
	"log/slog"

	"burritoops/internal/core/domain/model/menu"
	"burritoops/internal/core/ports"
)

// CreateMenuItemCommandHandler handles adding items to the menu.
type CreateMenuItemCommandHandler struct {
	menuItems ports.MenuStore
	logger    *slog.Logger
}

// NewCreateMenuItemCommandHandler creates a handler for menu item
// creation.
func NewCreateMenuItemCommandHandler(
	menuItems ports.MenuStore, logger *slog.Logger,
) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		menuItems: menuItems,
		logger:    logger.With("component", "create_menu_item"),
	}
}

// Handle adds the item to the menu and returns the stored record.
func (h CreateMenuItemCommandHandler) Handle(
	ctx context.Context, cmd CreateMenuItemCommand,
) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := h.menuItems.Create(ctx, cmd.Name(), cmd.Price(), cmd.Description())
	if err != nil {
		return nil, err
	}

	h.logger.Info("menu item added",
		"menu_item_id", created.ID().String(),
		"price", created.Price())
	return created, nil
}
