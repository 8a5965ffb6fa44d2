package commands

import (
	"context"
	"log/slog"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"
	"retail/internal/core/ports"
)

// ProcessPaymentCommandHandler handles the business logic for paying an
// order: charges through the payment gateway and, on success, sends a
// best-effort confirmation to the customer.
//
// Example:
//
//	handler := NewProcessPaymentCommandHandler(manager, gateway, notifier, logger)
//	cmd, _ := NewProcessPaymentCommand("ORD-1001", "credit_card",
//	    decimal.NewFromInt(1000), "jane@example.com")
//
//	paid, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // precondition violation or transport fault
//	}
//	if !paid {
//	    // gateway declined, order still Pending
//	}
type ProcessPaymentCommandHandler struct {
	manager  *services.OrderManager
	gateway  order.PaymentGateway
	notifier ports.NotificationSender
	logger   *slog.Logger
}

// NewProcessPaymentCommandHandler creates a handler bound to the order
// registry and the outbound payment and notification boundaries.
func NewProcessPaymentCommandHandler(
	manager *services.OrderManager,
	gateway order.PaymentGateway,
	notifier ports.NotificationSender,
	logger *slog.Logger,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		manager:  manager,
		gateway:  gateway,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle processes the payment command. The boolean reports whether the
// charge succeeded; a gateway decline is (false, nil). Gateway faults are
// logged before they propagate unmodified, and declines leave a warning.
// Confirmation delivery failures never fail an already-captured payment.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var (
		paid     bool
		snapshot order.Snapshot
	)
	err := h.manager.WithOrder(cmd.OrderID(), func(o *order.Order) error {
		success, payErr := o.ProcessPayment(ctx, h.gateway, cmd.PaymentMethod(), cmd.Amount())
		if payErr != nil {
			return payErr
		}
		paid = success
		if paid {
			snapshot = o.Snapshot()
		}
		return nil
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "payment processing failed",
			"orderID", cmd.OrderID(),
			"paymentMethod", cmd.PaymentMethod(),
			"error", err,
		)
		return false, err
	}
	if !paid {
		h.logger.WarnContext(ctx, "payment declined",
			"orderID", cmd.OrderID(),
			"paymentMethod", cmd.PaymentMethod(),
		)
	}

	if paid && cmd.CustomerEmail() != "" {
		delivered, sendErr := h.notifier.SendOrderConfirmation(ctx, ports.ConfirmationRequest{
			OrderID:       cmd.OrderID(),
			CustomerEmail: cmd.CustomerEmail(),
			Snapshot:      snapshot,
		})
		if sendErr != nil || !delivered {
			h.logger.WarnContext(ctx, "order confirmation not delivered",
				"orderID", cmd.OrderID(),
				"customerEmail", cmd.CustomerEmail(),
				"error", sendErr,
			)
		}
	}

	return paid, nil
}
