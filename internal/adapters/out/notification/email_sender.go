package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"retail/internal/core/ports"
	"retail/internal/pkg/retry"
)

var (
	ErrEmailSenderIsNotConstructed = errors.New(
		"EmailSender must be created via NewEmailSender constructor",
	)

	// ErrInvalidEmail is returned for addresses failing the minimal shape
	// check: an "@" with a "." somewhere after it.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Message is the rendered confirmation handed to the transport.
type Message struct {
	To      string
	CC      []string
	Subject string
	Body    string
}

// Transport delivers a rendered message over some channel. Implementations
// return an error for delivery failures; the sender owns retrying.
type Transport interface {
	Deliver(ctx context.Context, message Message) error
}

// EmailSender implements ports.NotificationSender over a pluggable
// transport, retrying transient delivery failures under a bounded policy.
type EmailSender struct {
	transport Transport
	policy    retry.Policy
	logger    *slog.Logger
}

// NewEmailSender creates a sender over the given transport. The zero policy
// falls back to the default of three attempts.
func NewEmailSender(transport Transport, policy retry.Policy, logger *slog.Logger) (*EmailSender, error) {
	if transport == nil {
		return nil, fmt.Errorf("%w: transport is nil", ErrEmailSenderIsNotConstructed)
	}

	return &EmailSender{
		transport: transport,
		policy:    policy,
		logger:    logger,
	}, nil
}

// SendOrderConfirmation renders and delivers the confirmation email.
// An address failing validation aborts before any delivery attempt; delivery
// failures are retried and the last error is surfaced once the attempt
// ceiling is reached.
func (s *EmailSender) SendOrderConfirmation(
	ctx context.Context,
	request ports.ConfirmationRequest,
) (bool, error) {
	if err := validateEmail(request.CustomerEmail); err != nil {
		return false, fmt.Errorf("order %s: %w", request.OrderID, err)
	}
	for _, cc := range request.CC {
		if err := validateEmail(cc); err != nil {
			return false, fmt.Errorf("order %s: cc: %w", request.OrderID, err)
		}
	}

	message := renderConfirmation(request)
	err := s.policy.Do(ctx, s.logger, "send order confirmation", func() error {
		return s.transport.Deliver(ctx, message)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func validateEmail(address string) error {
	at := strings.Index(address, "@")
	if at < 1 {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, address)
	}
	if !strings.Contains(address[at:], ".") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, address)
	}
	return nil
}

func renderConfirmation(request ports.ConfirmationRequest) Message {
	var body strings.Builder
	fmt.Fprintf(&body, "Your order %s has been confirmed.\n\n", request.OrderID)
	for _, item := range request.Snapshot.Items {
		fmt.Fprintf(&body, "  %dx %s at %s\n", item.Quantity, item.Name, item.UnitPrice)
	}
	fmt.Fprintf(&body, "\nTotal: %s\n", request.Snapshot.Total)
	if request.IncludeInvoice {
		body.WriteString("\nYour invoice is attached.\n")
	}

	return Message{
		To:      request.CustomerEmail,
		CC:      request.CC,
		Subject: fmt.Sprintf("Order %s confirmed", request.OrderID),
		Body:    body.String(),
	}
}
