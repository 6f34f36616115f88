package commands

import (
	"context"
	"log/slog"

	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/ports"
)

// CreateDriverCommandHandler handles driver registration.
type CreateDriverCommandHandler struct {
	drivers ports.DriverStore
	logger  *slog.Logger
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(
	drivers ports.DriverStore, logger *slog.Logger,
) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		drivers: drivers,
		logger:  logger.With("component", "create_driver"),
	}
}

// Handle registers the driver and returns the stored record.
func (h CreateDriverCommandHandler) Handle(
	ctx context.Context, cmd CreateDriverCommand,
) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := h.drivers.Create(ctx, cmd.Name(), cmd.Status())
	if err != nil {
		return nil, err
	}

	h.logger.Info("driver registered",
		"driver_id", created.ID().String(),
		"status", created.Status().String())
	return created, nil
}
