package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"spacefleet/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reportJob *ReportJob
	logger    *slog.Logger
}

// NewJobManager creates a new job manager. An empty reportSchedule disables
// the report job.
func NewJobManager(
	reportHandler queries.GetMissionsReportQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if reportSchedule != "" {
		jm.reportJob = NewReportJob(reportHandler, reportSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.reportJob == nil {
		jm.logger.InfoContext(context.Background(), "Report job disabled")
		return nil
	}
	if err := jm.reportJob.Start(); err != nil {
		return fmt.Errorf("failed to start report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.reportJob != nil {
		jm.reportJob.Stop()
	}
}
