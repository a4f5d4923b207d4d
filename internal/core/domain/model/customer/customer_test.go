package customer_test

import (
	"testing"

	"orders/internal/core/domain/model/customer"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreCustomer(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should restore valid customer", func(t *testing.T) {
		c, err := customer.RestoreCustomer(validID, "Alice", "alice@example.com")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, "alice@example.com", c.Email())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := customer.RestoreCustomer(invalidID, "Alice", "alice@example.com")

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should require name", func(t *testing.T) {
		c, err := customer.RestoreCustomer(validID, "", "alice@example.com")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require email", func(t *testing.T) {
		c, err := customer.RestoreCustomer(validID, "Alice", "")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("should reject zero-value customer", func(t *testing.T) {
		var c customer.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})
}
