package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"drones/internal/core/application/usecases/commands"
	"drones/internal/metrics"

	"github.com/robfig/cron/v3"
)

var ErrIntervalIsInvalid = errors.New("audit interval must be positive")

// BatteryAuditor runs one audit sweep.
type BatteryAuditor interface {
	Handle(ctx context.Context, cmd commands.AuditBatteryCommand) (commands.AuditReport, error)
}

// BatteryAuditJob runs the battery audit on a fixed interval. A run that is
// still going when the next tick fires makes that tick a no-op, and a panic in
// a run is logged instead of stopping the scheduler.
type BatteryAuditJob struct {
	auditor   BatteryAuditor
	interval  time.Duration
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewBatteryAuditJob(
	auditor BatteryAuditor,
	interval time.Duration,
	threshold int,
	logger *slog.Logger,
) *BatteryAuditJob {
	logger = logger.With("component", "battery_audit_job")
	cronLog := cronLogger{logger: logger}

	return &BatteryAuditJob{
		auditor:   auditor,
		interval:  interval,
		threshold: threshold,
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.SkipIfStillRunning(cronLog), cron.Recover(cronLog)),
		),
		logger: logger,
	}
}

func (j *BatteryAuditJob) Start() error {
	if j.interval <= 0 {
		return fmt.Errorf("%w: %s", ErrIntervalIsInvalid, j.interval)
	}

	if _, err := j.cron.AddFunc("@every "+j.interval.String(), func() {
		_ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Battery audit job started", "interval", j.interval.String(), "threshold", j.threshold)
	return nil
}

// Stop unschedules the job and waits for a run in progress to finish.
func (j *BatteryAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Battery audit job stopped")
}

// RunOnce performs a single audit run and records its outcome.
func (j *BatteryAuditJob) RunOnce(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.AuditRunDuration.Observe(time.Since(start).Seconds())
	}()
	metrics.AuditRuns.Inc()

	cmd, err := commands.NewAuditBatteryCommand(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Battery audit job misconfigured", "error", err)
		return err
	}

	report, err := j.auditor.Handle(ctx, cmd)

	metrics.AuditRecordsRaised.Add(float64(report.Notified))
	metrics.AuditFlagsCleared.Add(float64(report.Cleared))
	metrics.AuditDroneFailures.Add(float64(report.Failed))

	attrs := []any{
		"run_id", cmd.RunID().String(),
		"notified", report.Notified,
		"cleared", report.Cleared,
		"skipped", report.Skipped,
		"failed", report.Failed,
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Battery audit run failed", append(attrs, "error", err)...)
		return err
	}

	if report.Notified > 0 || report.Cleared > 0 {
		j.logger.InfoContext(ctx, "Battery audit run completed", attrs...)
	} else {
		j.logger.DebugContext(ctx, "Battery audit run completed", attrs...)
	}
	return nil
}

// cronLogger routes cron's own logging to slog. Scheduler chatter goes to debug.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
