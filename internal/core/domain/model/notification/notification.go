// Package notification provides the value objects describing a customer
// notification raised by an order state transition: the template key selected
// by the state machine and the notification itself, rendered against a
// customer contact and an order number.
package notification

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// TemplateKey identifies the message template used for a transition
// notification. Keys form a closed set selected by the order state machine.
type TemplateKey int

const (
	// TemplateUnknown represents an invalid or undefined template key.
	TemplateUnknown TemplateKey = iota

	// TemplateAccepted notifies the customer that the order was accepted.
	TemplateAccepted

	// TemplateFinished notifies the customer that the order is finished.
	TemplateFinished

	// TemplateDelivered notifies the customer that the order was delivered.
	TemplateDelivered

	// TemplateRejected notifies the customer that the order was rejected.
	TemplateRejected
)

func getTemplateStrings() map[TemplateKey]string {
	return map[TemplateKey]string{
		TemplateAccepted:  "accepted",
		TemplateFinished:  "finished",
		TemplateDelivered: "delivered",
		TemplateRejected:  "rejected",
	}
}

// String returns the stable wire name of the template key, or "unknown" for
// invalid values.
func (k TemplateKey) String() string {
	if s, ok := getTemplateStrings()[k]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the template key is a member of the closed template set.
func (k TemplateKey) Validate() error {
	if _, ok := getTemplateStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("template key",
			fmt.Errorf("%d is not a valid template key", int(k)))
	}
	return nil
}

// Subject renders the notification subject line for the given order number.
func (k TemplateKey) Subject(orderNumber string) string {
	switch k {
	case TemplateAccepted:
		return fmt.Sprintf("Order Accepted: %s", orderNumber)
	case TemplateFinished:
		return fmt.Sprintf("Order Finished: %s", orderNumber)
	case TemplateDelivered:
		return fmt.Sprintf("Order Delivered: %s", orderNumber)
	case TemplateRejected:
		return fmt.Sprintf("Order Rejected: %s", orderNumber)
	default:
		return ""
	}
}

// Body renders the notification body text for the given order number.
func (k TemplateKey) Body(orderNumber string) string {
	switch k {
	case TemplateAccepted:
		return fmt.Sprintf("Your order %s has been accepted.", orderNumber)
	case TemplateFinished:
		return fmt.Sprintf("Your order %s is finished.", orderNumber)
	case TemplateDelivered:
		return fmt.Sprintf("Your order %s has been delivered.", orderNumber)
	case TemplateRejected:
		return fmt.Sprintf("Your order %s has been rejected.", orderNumber)
	default:
		return ""
	}
}

// Notification is an immutable value object describing one customer
// notification to dispatch. It carries everything a delivery channel needs;
// dispatchers never reach back into the order aggregate.
type Notification struct {
	contact     string
	templateKey TemplateKey
	orderNumber string
}

// NewNotification creates a notification for the given customer contact,
// template key, and derived order number. All fields are required.
func NewNotification(contact string, templateKey TemplateKey, orderNumber string) (Notification, error) {
	if contact == "" {
		return Notification{}, errs.NewValueIsRequiredError("contact")
	}
	if err := templateKey.Validate(); err != nil {
		return Notification{}, err
	}
	if orderNumber == "" {
		return Notification{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return Notification{
		contact:     contact,
		templateKey: templateKey,
		orderNumber: orderNumber,
	}, nil
}

// Contact returns the customer contact address the notification is sent to.
func (n Notification) Contact() string {
	return n.contact
}

// TemplateKey returns the template key selected by the state machine.
func (n Notification) TemplateKey() TemplateKey {
	return n.templateKey
}

// OrderNumber returns the human-readable order number the templates refer to.
func (n Notification) OrderNumber() string {
	return n.orderNumber
}

// Subject renders the subject line for this notification.
func (n Notification) Subject() string {
	return n.templateKey.Subject(n.orderNumber)
}

// Body renders the body text for this notification.
func (n Notification) Body() string {
	return n.templateKey.Body(n.orderNumber)
}
