// Package customer provides the read-only customer model referenced by
// orders. Customers are owned by an external system; this core only reads
// them to resolve names for listings and contact addresses for notifications.
package customer

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via RestoreCustomer")

// Customer is the read model of an externally owned customer. One customer
// has many orders; an order holds a non-owning reference to its customer.
// This core never mutates customers.
type Customer struct {
	id    kernel.UUID
	name  string
	email string

	isConstructed bool
}

// RestoreCustomer reconstructs a customer from persistence.
// Name and email are required: a customer without a contact address cannot
// receive transition notifications.
func RestoreCustomer(id kernel.UUID, name, email string) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the contact address used for transition notifications.
func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
