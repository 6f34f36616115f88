// Package driverrepo provides the snapshot-backed driver store and its
// persistence DTO.
package driverrepo

import (
	"fmt"

	"burritoops/internal/core/domain/model/driver"
	"burritoops/internal/core/domain/model/kernel"
)

// DriverDTO is the persisted shape of a delivery driver.
type DriverDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:     d.ID().String(),
		Name:   d.Name(),
		Status: d.Status().String(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.ParseEntityID(kernel.DriverPrefix, dto.ID)
	if err != nil {
		return nil, fmt.Errorf("driver %q: %w", dto.ID, err)
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("driver %q: %w", dto.ID, err)
	}

	return driver.RestoreDriver(id, dto.Name, status)
}
