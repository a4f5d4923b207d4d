package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewTransitionOrderCommand(orderID, order.Accepted)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Accepted, cmd.TargetState())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewTransitionOrderCommand(invalidID, order.Accepted)

		require.Error(t, err)
	})

	t.Run("should fail with unknown target state", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), order.State(42))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero target state", func(t *testing.T) {
		var target order.State

		_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), target)

		require.Error(t, err)
	})

	t.Run("should reject zero-value command", func(t *testing.T) {
		var cmd commands.TransitionOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrTransitionOrderCommandIsNotConstructed, err)
	})
}
