package order_test

import (
	"strings"
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOrderNumber(t *testing.T) {
	t.Run("should be deterministic", func(t *testing.T) {
		id := kernel.NewUUID()

		first := order.FormatOrderNumber(id)
		second := order.FormatOrderNumber(id)

		assert.Equal(t, first, second)
	})

	t.Run("should be injective over a range of identifiers", func(t *testing.T) {
		seen := make(map[string]kernel.UUID)
		for i := 0; i < 1000; i++ {
			id := kernel.NewUUID()
			number := order.FormatOrderNumber(id)

			previous, collision := seen[number]
			require.False(t, collision,
				"order number %s collides for %s and %s", number, previous, id)
			seen[number] = id
		}
	})

	t.Run("should carry the OD prefix and encode the identifier", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)

		number := order.FormatOrderNumber(id)

		assert.Equal(t, "OD-550E8400E29B41D4A716446655440000", number)
		assert.True(t, strings.HasPrefix(number, "OD-"))
	})

	t.Run("should match the aggregate-derived number on every read path", func(t *testing.T) {
		id := kernel.NewUUID()
		now := time.Now()
		o, err := order.RestoreOrder(id, kernel.NewUUID(), "details", order.Created, now, now)
		require.NoError(t, err)

		assert.Equal(t, order.FormatOrderNumber(id), o.Number())
	})
}
