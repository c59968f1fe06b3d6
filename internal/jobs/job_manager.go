package jobs

import (
	"fmt"
)

// JobManager starts and stops the background jobs of the service.
type JobManager struct {
	batteryAuditJob *BatteryAuditJob
}

func NewJobManager(batteryAuditJob *BatteryAuditJob) *JobManager {
	return &JobManager{batteryAuditJob: batteryAuditJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.batteryAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start battery audit job: %w", err)
	}
	return nil
}

// StopAll stops all jobs and waits for in-flight runs.
func (jm *JobManager) StopAll() {
	jm.batteryAuditJob.Stop()
}
