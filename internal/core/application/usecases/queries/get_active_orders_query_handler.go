package queries

import (
	"context"
	"sort"

	"burritoops/internal/core/domain/model/order"
	"burritoops/internal/core/ports"
)

// activeStatuses are the lifecycle states in which an order has been
// accepted but not yet delivered or cancelled.
var activeStatuses = []order.Status{
	order.Confirmed,
	order.Preparing,
	order.Ready,
	order.OutForDelivery,
}

// GetActiveOrdersQueryHandler reads in-flight orders from the order store.
type GetActiveOrdersQueryHandler struct {
	orders ports.OrderStore
}

// NewGetActiveOrdersQueryHandler creates a handler for active order
// queries.
func NewGetActiveOrdersQueryHandler(orders ports.OrderStore) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{orders: orders}
}

// Handle returns the read models for every active order, newest first.
// The store lists one status at a time, so results are gathered per
// status and re-sorted by creation time descending to keep the store's
// ordering contract.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	collected := make([]*order.Order, 0)
	for _, status := range activeStatuses {
		matched, err := h.orders.List(ctx, ports.OrderFilter{Status: &status})
		if err != nil {
			return nil, err
		}
		collected = append(collected, matched...)
	}

	sort.Slice(collected, func(i, j int) bool {
		a, b := collected[i], collected[j]
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().After(b.CreatedAt())
		}
		return a.ID().String() < b.ID().String()
	})

	responses := make([]GetActiveOrdersQueryResponse, 0, len(collected))
	for _, o := range collected {
		resp := GetActiveOrdersQueryResponse{
			ID:           o.ID().String(),
			Status:       o.Status().String(),
			CustomerName: o.CustomerSnapshot().Name(),
			TotalAmount:  o.TotalAmount(),
			CreatedAt:    o.CreatedAt(),
		}
		if o.AssignedDriverID() != nil {
			resp.AssignedDriverID = o.AssignedDriverID().String()
		}
		responses = append(responses, resp)
	}

	return responses, nil
}
