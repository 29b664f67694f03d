package jobs

import (
	"context"
	"log/slog"

	"spacefleet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report at the start of every minute.
const DefaultReportSchedule = "0 * * * * *"

// ReportJob logs the fleet report on a cron schedule.
type ReportJob struct {
	handler  queries.GetMissionsReportQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReportJob creates a job that renders the report on schedule, a cron
// expression with a leading seconds field.
func NewReportJob(handler queries.GetMissionsReportQueryHandler, schedule string, logger *slog.Logger) *ReportJob {
	return &ReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "report_job"),
	}
}

// Start registers the job and starts the scheduler.
func (j *ReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Report job started", "schedule", j.schedule)
	return nil
}

// Run renders the report once and logs it.
func (j *ReportJob) Run(ctx context.Context) {
	report, err := j.handler.Handle(ctx, queries.NewGetMissionsReportQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Report job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Fleet report", "missions", len(report.Missions), "report", report.String())
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *ReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Report job stopped")
}
