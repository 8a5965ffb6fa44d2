package jobs

import (
	"context"
	"log/slog"
	"time"

	"retail/internal/core/domain/model/order"
	"retail/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// SalesReportJob summarizes the previous day's exported snapshots once a
// night and logs the outcome for operations.
type SalesReportJob struct {
	repository ports.SnapshotRepository
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSalesReportJob creates a job reporting on yesterday's orders shortly
// after midnight.
func NewSalesReportJob(repository ports.SnapshotRepository, logger *slog.Logger) *SalesReportJob {
	return &SalesReportJob{
		repository: repository,
		cron:       cron.New(),
		logger:     logger.With("component", "sales_report_job"),
	}
}

// Start begins the report job, running daily at 00:05.
func (j *SalesReportJob) Start() error {
	_, err := j.cron.AddFunc("5 0 * * *", func() {
		ctx := context.Background()

		now := time.Now()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		from := midnight.AddDate(0, 0, -1)
		to := midnight.Add(-time.Nanosecond)

		snapshots, err := j.repository.GetByPeriod(ctx, from, to)
		if err != nil {
			j.logger.ErrorContext(ctx, "Sales report failed", "error", err)
			return
		}

		revenue := decimal.Zero
		cancelled := 0
		for _, snapshot := range snapshots {
			revenue = revenue.Add(snapshot.Total)
			if snapshot.Status == order.Cancelled.String() {
				cancelled++
			}
		}

		j.logger.InfoContext(ctx, "Daily sales report",
			"date", from.Format(time.DateOnly),
			"orders", len(snapshots),
			"cancelled", cancelled,
			"revenue", revenue.String(),
		)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started (running daily)")
	return nil
}

// Stop stops the report job.
func (j *SalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}
