package commands

import (
	"context"
	"log/slog"

	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Resolves the customer and every menu item from their stores, then hands
// creation to the order store, which snapshots both into the new order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(orders, customers, menuItems, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s placed, total %.2f", created.ID(), created.TotalAmount())
type CreateOrderCommandHandler struct {
	orders    ports.OrderStore
	customers ports.CustomerStore
	menuItems ports.MenuStore
	logger    *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	orders ports.OrderStore,
	customers ports.CustomerStore,
	menuItems ports.MenuStore,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:    orders,
		customers: customers,
		menuItems: menuItems,
		logger:    logger.With("component", "create_order"),
	}
}

// Handle processes the order placement command. Every referenced entity
// must exist: an unknown customer or menu item id fails the whole command
// with errs.ErrObjectNotFound before anything is written.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cust, err := h.customers.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	inputs := cmd.Lines()
	lines := make([]order.Line, 0, len(inputs))
	for _, input := range inputs {
		item, itemErr := h.menuItems.Get(ctx, input.MenuItemID)
		if itemErr != nil {
			return nil, itemErr
		}
		lines = append(lines, order.Line{MenuItem: item, Quantity: input.Quantity})
	}

	created, err := h.orders.Create(ctx, cust, lines, cmd.Notes())
	if err != nil {
		return nil, err
	}

	h.logger.Info("order placed",
		"order_id", created.ID().String(),
		"customer_id", cust.ID().String(),
		"total_amount", created.TotalAmount())
	return created, nil
}
