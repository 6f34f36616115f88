// Package queries contains read-only operations over the stores. Handlers
// return flat read models rather than domain aggregates, keeping the read
// side decoupled from domain invariants in the CQRS split.
package queries

import (
	"errors"
	"time"

	"burritoops/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order currently moving through the
// kitchen or out on the road: confirmed, preparing, ready, or
// out_for_delivery. Pending orders are not yet active; delivered and
// cancelled ones no longer are.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(orders)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//	fmt.Printf("%d orders in flight\n", len(active))
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for in-flight orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is the read model for one in-flight order.
type GetActiveOrdersQueryResponse struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"`
	CustomerName     string    `json:"customer_name"`
	AssignedDriverID string    `json:"assigned_driver_id,omitempty"`
	TotalAmount      float64   `json:"total_amount"`
	CreatedAt        time.Time `json:"created_at"`
}
