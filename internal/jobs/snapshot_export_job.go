package jobs

import (
	"context"
	"log/slog"

	"retail/internal/core/domain/services"
	"retail/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SnapshotExportJob periodically projects the live order registry into the
// snapshot store so analytics consumers see a recent view without touching
// the registry.
type SnapshotExportJob struct {
	manager    *services.OrderManager
	repository ports.SnapshotRepository
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSnapshotExportJob creates a job exporting registry snapshots every
// minute.
func NewSnapshotExportJob(
	manager *services.OrderManager,
	repository ports.SnapshotRepository,
	logger *slog.Logger,
) *SnapshotExportJob {
	return &SnapshotExportJob{
		manager:    manager,
		repository: repository,
		cron:       cron.New(),
		logger:     logger.With("component", "snapshot_export_job"),
	}
}

// Start begins the export job to run every minute. A failed row is logged
// and skipped; the remaining snapshots still export.
func (j *SnapshotExportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		exported := 0
		for _, snapshot := range j.manager.Snapshots() {
			if upsertErr := j.repository.Upsert(ctx, snapshot); upsertErr != nil {
				j.logger.ErrorContext(ctx, "Snapshot export failed",
					"orderID", snapshot.OrderID, "error", upsertErr)
				continue
			}
			exported++
		}

		if exported > 0 {
			j.logger.InfoContext(ctx, "Snapshots exported", "count", exported)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot export job started (running every minute)")
	return nil
}

// Stop stops the export job.
func (j *SnapshotExportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot export job stopped")
}
