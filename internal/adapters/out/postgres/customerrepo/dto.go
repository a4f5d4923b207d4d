// Package customerrepo provides data transfer objects and mapping functions
// for the customer read model. Customers are reference data here: the service
// reads them to address notifications and to enrich order views, but never
// writes them.
package customerrepo

import (
	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer records.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// toDomain converts a database row to a customer read model.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email)
}
