// Package orderrepo provides the snapshot-backed order store and the data
// transfer objects mapping order aggregates to their persisted JSON form.
package orderrepo

import (
	"fmt"
	"time"

	"burritoops/internal/core/domain/model/customer"
	"burritoops/internal/core/domain/model/kernel"
	"burritoops/internal/core/domain/model/menu"
	"burritoops/internal/core/domain/model/order"
)

// OrderDTO is the persisted shape of an order, including the customer and
// menu-item snapshots taken at order time.
type OrderDTO struct {
	ID               string      `json:"id"`
	CustomerID       string      `json:"customer_id"`
	CustomerSnapshot CustomerDTO `json:"customer_snapshot"`
	Items            []ItemDTO   `json:"items"`
	Status           string      `json:"status"`
	AssignedDriverID *string     `json:"assigned_driver_id,omitempty"`
	TotalAmount      float64     `json:"total_amount"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	Notes            string      `json:"notes,omitempty"`
}

// CustomerDTO is the embedded customer snapshot within an order record.
type CustomerDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ItemDTO is a persisted order line with its menu-item snapshot.
type ItemDTO struct {
	MenuItemID       string      `json:"menu_item_id"`
	Quantity         int         `json:"quantity"`
	MenuItemSnapshot MenuItemDTO `json:"menu_item_snapshot"`
}

// MenuItemDTO is the embedded menu-item snapshot within an order line.
type MenuItemDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// fromDomain converts an order aggregate to its persisted representation.
func fromDomain(o *order.Order) OrderDTO {
	var driverID *string
	if id := o.AssignedDriverID(); id != nil {
		raw := id.String()
		driverID = &raw
	}

	cust := o.CustomerSnapshot()
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		snap := item.Snapshot()
		items = append(items, ItemDTO{
			MenuItemID: item.MenuItemID().String(),
			Quantity:   item.Quantity(),
			MenuItemSnapshot: MenuItemDTO{
				ID:          snap.ID().String(),
				Name:        snap.Name(),
				Price:       snap.Price(),
				Description: snap.Description(),
			},
		})
	}

	return OrderDTO{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		CustomerSnapshot: CustomerDTO{
			ID:      cust.ID().String(),
			Name:    cust.Name(),
			Phone:   cust.Phone(),
			Address: cust.Address(),
		},
		Items:            items,
		Status:           o.Status().String(),
		AssignedDriverID: driverID,
		TotalAmount:      o.TotalAmount(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		Notes:            o.Notes(),
	}
}

// toDomain reconstructs an order aggregate from its persisted form,
// re-validating every field through the domain constructors. A record that
// fails reconstruction poisons the whole load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.ParseEntityID(kernel.OrderPrefix, dto.ID)
	if err != nil {
		return nil, fmt.Errorf("order %q: %w", dto.ID, err)
	}

	customerID, err := kernel.ParseEntityID(kernel.CustomerPrefix, dto.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("order %q: %w", dto.ID, err)
	}

	snapshotID, err := kernel.ParseEntityID(kernel.CustomerPrefix, dto.CustomerSnapshot.ID)
	if err != nil {
		return nil, fmt.Errorf("order %q: %w", dto.ID, err)
	}
	cust, err := customer.RestoreCustomer(
		snapshotID, dto.CustomerSnapshot.Name, dto.CustomerSnapshot.Phone, dto.CustomerSnapshot.Address)
	if err != nil {
		return nil, fmt.Errorf("order %q: %w", dto.ID, err)
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, fmt.Errorf("order %q: %w", dto.ID, itemErr)
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("order %q: %w", dto.ID, err)
	}

	var driverID *kernel.EntityID
	if dto.AssignedDriverID != nil {
		parsed, driverErr := kernel.ParseEntityID(kernel.DriverPrefix, *dto.AssignedDriverID)
		if driverErr != nil {
			return nil, fmt.Errorf("order %q: %w", dto.ID, driverErr)
		}
		driverID = &parsed
	}

	return order.RestoreOrder(
		id, customerID, cust, items, status, driverID,
		dto.TotalAmount, dto.CreatedAt, dto.UpdatedAt, dto.Notes)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	menuItemID, err := kernel.ParseEntityID(kernel.MenuItemPrefix, dto.MenuItemID)
	if err != nil {
		return order.Item{}, err
	}

	snapshotID, err := kernel.ParseEntityID(kernel.MenuItemPrefix, dto.MenuItemSnapshot.ID)
	if err != nil {
		return order.Item{}, err
	}
	snap, err := menu.RestoreMenuItem(
		snapshotID, dto.MenuItemSnapshot.Name, dto.MenuItemSnapshot.Price, dto.MenuItemSnapshot.Description)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(menuItemID, dto.Quantity, snap)
}
