package commands

import (
	"context"
	"log/slog"

	"burritoops/internal/core/domain/model/customer"
	"burritoops/internal/core/ports"
)

// CreateCustomerCommandHandler handles customer registration.
type CreateCustomerCommandHandler struct {
	customers ports.CustomerStore
	logger    *slog.Logger
}

// NewCreateCustomerCommandHandler creates a handler for customer
// registration.
func NewCreateCustomerCommandHandler(
	customers ports.CustomerStore, logger *slog.Logger,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		customers: customers,
		logger:    logger.With("component", "create_customer"),
	}
}

// Handle registers the customer and returns the stored record.
func (h CreateCustomerCommandHandler) Handle(
	ctx context.Context, cmd CreateCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := h.customers.Create(ctx, cmd.Name(), cmd.Phone(), cmd.Address())
	if err != nil {
		return nil, err
	}

	h.logger.Info("customer registered", "customer_id", created.ID().String())
	return created, nil
}
