package notification

import (
	"context"
	"log/slog"
)

// LogTransport writes messages to the structured log instead of a real mail
// channel. It stands in for SMTP in environments without a mail relay.
type LogTransport struct {
	logger *slog.Logger
}

// NewLogTransport creates a transport logging through logger.
func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger.With("component", "mail_transport")}
}

// Deliver logs the message and reports success.
func (t *LogTransport) Deliver(ctx context.Context, message Message) error {
	t.logger.InfoContext(ctx, "Email delivered",
		"to", message.To,
		"cc", message.CC,
		"subject", message.Subject,
	)
	return nil
}
