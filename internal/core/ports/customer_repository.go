// Package ports defines the interfaces between the application core and
// infrastructure. These contracts enable dependency inversion and
// testability: command handlers depend on ports, adapters implement them.
package ports

import (
	"context"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
)

// CustomerRepository defines the read contract for externally owned
// customers. This core never creates, updates, or deletes customers.
type CustomerRepository interface {
	// Get retrieves a customer by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if the customer
	// is absent.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
