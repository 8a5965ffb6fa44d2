package ports

import (
	"context"

	"retail/internal/core/domain/model/order"
)

// ConfirmationRequest carries everything a notification channel needs to
// confirm a paid order to its customer.
type ConfirmationRequest struct {
	// OrderID identifies the confirmed order.
	OrderID string

	// CustomerEmail is the destination address.
	CustomerEmail string

	// Snapshot is the detached order state at confirmation time.
	Snapshot order.Snapshot

	// IncludeInvoice requests an invoice attachment.
	IncludeInvoice bool

	// CC lists additional recipient addresses.
	CC []string
}

// NotificationSender defines the outbound contract for customer
// notifications. Implementations own their own delivery retries; a returned
// error means the notification was abandoned after all attempts.
type NotificationSender interface {
	// SendOrderConfirmation delivers an order confirmation to the customer.
	// The boolean reports whether the confirmation was delivered.
	SendOrderConfirmation(ctx context.Context, request ConfirmationRequest) (bool, error)
}
