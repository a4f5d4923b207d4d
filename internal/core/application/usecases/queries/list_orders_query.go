package queries

import (
	"errors"
	"strings"

	"orders/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves orders together with their customers, optionally
// narrowed by a search term. The term matches case-insensitively against the
// derived order number and the customer name; an empty term returns every
// order.
type ListOrdersQuery struct {
	searchTerm string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. The search term is
// trimmed; any value, including empty, is valid.
func NewListOrdersQuery(searchTerm string) ListOrdersQuery {
	return ListOrdersQuery{
		searchTerm: strings.TrimSpace(searchTerm),
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// SearchTerm returns the trimmed search term, empty when unfiltered.
func (q ListOrdersQuery) SearchTerm() string {
	return q.searchTerm
}

// Matches reports whether a derived order number or customer name satisfies
// the search term. The order number is not stored, so filtering happens here
// rather than in SQL.
func (q ListOrdersQuery) Matches(orderNumber, customerName string) bool {
	if q.searchTerm == "" {
		return true
	}

	term := strings.ToLower(q.searchTerm)
	return strings.Contains(strings.ToLower(orderNumber), term) ||
		strings.Contains(strings.ToLower(customerName), term)
}
