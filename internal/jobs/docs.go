// Package jobs provides scheduled background tasks for the fleet service.
//
// Jobs are built on github.com/robfig/cron/v3 with a leading seconds field
// in every schedule.
//
// # Available Jobs
//
// ReportJob renders the missions report (missions by rocket count and name,
// each followed by its rockets) and writes it to the structured log.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reportHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the report job.
package jobs
