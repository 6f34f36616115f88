// Package customerrepo provides the snapshot-backed customer store and its
// persistence DTO.
package customerrepo

import (
	"fmt"

	"burritoops/internal/core/domain/model/customer"
	"burritoops/internal/core/domain/model/kernel"
)

// CustomerDTO is the persisted shape of a customer.
type CustomerDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID().String(),
		Name:    c.Name(),
		Phone:   c.Phone(),
		Address: c.Address(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.ParseEntityID(kernel.CustomerPrefix, dto.ID)
	if err != nil {
		return nil, fmt.Errorf("customer %q: %w", dto.ID, err)
	}
	return customer.RestoreCustomer(id, dto.Name, dto.Phone, dto.Address)
}
