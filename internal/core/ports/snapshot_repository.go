package ports

import (
	"context"
	"time"

	"retail/internal/core/domain/model/order"
)

// SnapshotRepository defines the persistence contract for order snapshots.
// The in-memory registry stays the source of truth; the repository is an
// export surface for analytics and reporting consumers.
type SnapshotRepository interface {
	// Upsert persists a snapshot, replacing any previously stored state for
	// the same order ID.
	Upsert(ctx context.Context, snapshot order.Snapshot) error

	// GetByPeriod retrieves all snapshots of orders created within the
	// inclusive [from, to] range.
	GetByPeriod(ctx context.Context, from, to time.Time) ([]order.Snapshot, error)
}
