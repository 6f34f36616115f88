package queries

import (
	"context"

	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/ports"
)

// GetAvailableDriversQueryHandler reads free drivers from the driver
// store.
type GetAvailableDriversQueryHandler struct {
	drivers ports.DriverStore
}

// NewGetAvailableDriversQueryHandler creates a handler for available
// driver queries.
func NewGetAvailableDriversQueryHandler(
	drivers ports.DriverStore,
) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{drivers: drivers}
}

// Handle returns the read models for every available driver, in the
// store's name order.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	available := driver.Available
	matched, err := h.drivers.List(ctx, ports.DriverFilter{Status: &available})
	if err != nil {
		return nil, err
	}

	responses := make([]GetAvailableDriversQueryResponse, 0, len(matched))
	for _, d := range matched {
		responses = append(responses, GetAvailableDriversQueryResponse{
			ID:     d.ID().String(),
			Name:   d.Name(),
			Status: d.Status().String(),
		})
	}

	return responses, nil
}
