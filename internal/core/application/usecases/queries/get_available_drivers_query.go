package queries

import (
	"errors"

	"burritoops/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves every driver free to take an order.
//
// Example:
//
//	query := NewGetAvailableDriversQuery()
//	handler := NewGetAvailableDriversQueryHandler(drivers)
//
//	free, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available drivers: %w", err)
//	}
//	fmt.Printf("%d drivers available\n", len(free))
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query for free drivers.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// GetAvailableDriversQueryResponse is the read model for one free driver.
type GetAvailableDriversQueryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
