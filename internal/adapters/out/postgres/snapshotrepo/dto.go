// Package snapshotrepo persists order snapshots for analytics and export
// consumers. The in-memory registry remains the source of truth; this store
// is an append-and-replace projection keyed by order ID.
package snapshotrepo

import (
	"encoding/json"
	"time"

	"retail/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// SnapshotDTO represents the database structure for persisting order
// snapshots. Line items are stored as a JSON document since they are only
// read back whole.
type SnapshotDTO struct {
	OrderID    string          `gorm:"primaryKey"`
	CustomerID string          `gorm:"index"`
	Items      []byte          `gorm:"type:jsonb"`
	Status     string          `gorm:"index"`
	Total      decimal.Decimal `gorm:"type:numeric"`
	CreatedAt  time.Time       `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order snapshots.
func (SnapshotDTO) TableName() string {
	return "order_snapshots"
}

// fromDomain converts a snapshot projection to its database representation.
func fromDomain(snapshot order.Snapshot) (SnapshotDTO, error) {
	items, err := json.Marshal(snapshot.Items)
	if err != nil {
		return SnapshotDTO{}, err
	}

	return SnapshotDTO{
		OrderID:    snapshot.OrderID,
		CustomerID: snapshot.CustomerID,
		Items:      items,
		Status:     snapshot.Status,
		Total:      snapshot.Total,
		CreatedAt:  snapshot.CreatedAt,
		UpdatedAt:  snapshot.UpdatedAt,
	}, nil
}

// toDomain converts a database DTO back to the snapshot projection.
func toDomain(dto SnapshotDTO) (order.Snapshot, error) {
	var items []order.LineItem
	if len(dto.Items) > 0 {
		if err := json.Unmarshal(dto.Items, &items); err != nil {
			return order.Snapshot{}, err
		}
	}

	return order.Snapshot{
		OrderID:    dto.OrderID,
		CustomerID: dto.CustomerID,
		Items:      items,
		Status:     dto.Status,
		Total:      dto.Total,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	}, nil
}
