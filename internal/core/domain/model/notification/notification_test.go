package notification_test

import (
	"testing"

	"orders/internal/core/domain/model/notification"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	t.Run("should create valid notification", func(t *testing.T) {
		n, err := notification.NewNotification("alice@example.com", notification.TemplateAccepted, "OD-1234")

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", n.Contact())
		assert.Equal(t, notification.TemplateAccepted, n.TemplateKey())
		assert.Equal(t, "OD-1234", n.OrderNumber())
	})

	t.Run("should require contact", func(t *testing.T) {
		_, err := notification.NewNotification("", notification.TemplateAccepted, "OD-1234")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require valid template key", func(t *testing.T) {
		_, err := notification.NewNotification("alice@example.com", notification.TemplateUnknown, "OD-1234")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require order number", func(t *testing.T) {
		_, err := notification.NewNotification("alice@example.com", notification.TemplateRejected, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTemplateKey_Rendering(t *testing.T) {
	testCases := []struct {
		key     notification.TemplateKey
		subject string
		body    string
	}{
		{notification.TemplateAccepted, "Order Accepted: OD-42", "Your order OD-42 has been accepted."},
		{notification.TemplateFinished, "Order Finished: OD-42", "Your order OD-42 is finished."},
		{notification.TemplateDelivered, "Order Delivered: OD-42", "Your order OD-42 has been delivered."},
		{notification.TemplateRejected, "Order Rejected: OD-42", "Your order OD-42 has been rejected."},
	}

	for _, tc := range testCases {
		t.Run(tc.key.String(), func(t *testing.T) {
			assert.Equal(t, tc.subject, tc.key.Subject("OD-42"))
			assert.Equal(t, tc.body, tc.key.Body("OD-42"))
		})
	}

	t.Run("unknown key renders empty", func(t *testing.T) {
		assert.Empty(t, notification.TemplateUnknown.Subject("OD-42"))
		assert.Empty(t, notification.TemplateUnknown.Body("OD-42"))
	})
}

func TestTemplateKey_Validate(t *testing.T) {
	t.Run("should validate known keys", func(t *testing.T) {
		for _, key := range []notification.TemplateKey{
			notification.TemplateAccepted,
			notification.TemplateFinished,
			notification.TemplateDelivered,
			notification.TemplateRejected,
		} {
			require.NoError(t, key.Validate())
		}
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		require.Error(t, notification.TemplateUnknown.Validate())
		require.Error(t, notification.TemplateKey(99).Validate())
	})
}
