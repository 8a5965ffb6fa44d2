package commands

import (
	"context"
	"errors"
	"log/slog"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// ApplyDiscountCommandHandler handles the business logic for discount
// application. Rejected codes are best-effort: they are logged and yield a
// zero discount without failing the call.
type ApplyDiscountCommandHandler struct {
	manager *services.OrderManager
	logger  *slog.Logger
}

// NewApplyDiscountCommandHandler creates a handler bound to the order
// registry.
func NewApplyDiscountCommandHandler(
	manager *services.OrderManager,
	logger *slog.Logger,
) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{
		manager: manager,
		logger:  logger,
	}
}

// Handle processes the discount command and returns the discount amount
// applied. A too-short or unknown code is logged and yields zero; only an
// unknown order fails the call.
func (h *ApplyDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyDiscountCommand) (decimal.Decimal, error) {
	if err := cmd.Validate(); err != nil {
		return decimal.Zero, err
	}

	var amount decimal.Decimal
	err := h.manager.WithOrder(cmd.OrderID(), func(o *order.Order) error {
		applied, applyErr := o.ApplyDiscount(cmd.DiscountCode())
		if applyErr != nil {
			if errors.Is(applyErr, order.ErrDiscountCodeTooShort) ||
				errors.Is(applyErr, order.ErrUnknownDiscountCode) {
				h.logger.WarnContext(ctx, "discount code rejected",
					"orderID", cmd.OrderID(),
					"code", cmd.DiscountCode(),
					"reason", applyErr,
				)
				amount = decimal.Zero
				return nil
			}
			return applyErr
		}
		amount = applied
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}
