package jobs

import (
	"fmt"
	"log/slog"

	"retail/internal/core/domain/services"
	"retail/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotExportJob *SnapshotExportJob
	salesReportJob    *SalesReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	manager *services.OrderManager,
	repository ports.SnapshotRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotExportJob: NewSnapshotExportJob(manager, repository, logger),
		salesReportJob:    NewSalesReportJob(repository, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotExportJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot export job: %w", err)
	}

	if err := jm.salesReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.snapshotExportJob.Stop()
		return fmt.Errorf("failed to start sales report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotExportJob.Stop()
	jm.salesReportJob.Stop()
}
