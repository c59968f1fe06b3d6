// Package jobs provides the scheduled background tasks of the fleet service.
//
// Jobs are built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// BatteryAuditJob runs the Battery Auditor every AUDIT_INTERVAL (default one
// minute). Each run raises one audit record per drone that dropped below the
// threshold since the previous alert, and resets the alert once the drone is
// back at or above it.
//
// # Usage
//
//	auditJob := jobs.NewBatteryAuditJob(&auditHandler, time.Minute, 20, logger)
//	jobManager := jobs.NewJobManager(auditJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule is "@every <interval>". The cron chain wraps every run in
// SkipIfStillRunning, so runs never overlap, and Recover, so a panic is
// logged and the next tick still fires. StopAll waits for a run in progress.
package jobs
