// Package retry provides a bounded-attempt retry policy for calls across
// external boundaries such as notification delivery.
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultMaxAttempts is the attempt ceiling used when a Policy does not set one.
const DefaultMaxAttempts = 3

// Policy describes how often an operation is retried. Delay is optional; the
// zero value retries immediately.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultPolicy returns the policy applied to notification sending:
// three attempts, no delay between them.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts}
}

// Do executes fn until it succeeds or the attempt ceiling is reached.
// Every failed attempt is logged; the last attempt's error is returned after
// the ceiling is exhausted. Retrying stops early when ctx is cancelled.
func (p Policy) Do(ctx context.Context, logger *slog.Logger, operation string, fn func() error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if logger != nil {
			logger.WarnContext(ctx, "operation attempt failed",
				"operation", operation,
				"attempt", attempt,
				"max_attempts", maxAttempts,
				"error", lastErr,
			)
		}

		if attempt < maxAttempts && p.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.Delay):
			}
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operation, maxAttempts, lastErr)
}
