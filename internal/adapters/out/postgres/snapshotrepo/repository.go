package snapshotrepo

import (
	"context"
	"time"

	"retail/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotRepository implements ports.SnapshotRepository using GORM.
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GORM snapshot repository.
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Upsert saves a snapshot, replacing the previously stored row for the same
// order ID.
func (r *GormSnapshotRepository) Upsert(ctx context.Context, snapshot order.Snapshot) error {
	dto, err := fromDomain(snapshot)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetByPeriod retrieves snapshots of orders created within the inclusive
// [from, to] range, ordered by creation time.
func (r *GormSnapshotRepository) GetByPeriod(
	ctx context.Context,
	from, to time.Time,
) ([]order.Snapshot, error) {
	var dtos []SnapshotDTO
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	snapshots := make([]order.Snapshot, 0, len(dtos))
	for _, dto := range dtos {
		snapshot, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}
