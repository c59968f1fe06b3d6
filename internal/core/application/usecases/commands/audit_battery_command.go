package commands

import (
	"errors"
	"time"

	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

var ErrAuditBatteryCommandIsNotConstructed = errors.New(
	"AuditBatteryCommand must be created via NewAuditBatteryCommand constructor",
)

// AuditBatteryCommand is one sweep of the battery auditor. Each sweep gets its
// own run id and start time, shared by every record it raises.
type AuditBatteryCommand struct { //nolint:recvcheck //using for validation
	runID     kernel.UUID
	threshold int
	startedAt time.Time

	guard guard.ConstructorGuard
}

func NewAuditBatteryCommand(threshold int) (AuditBatteryCommand, error) {
	command := AuditBatteryCommand{
		runID:     kernel.NewUUID(),
		startedAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setThreshold(threshold); err != nil {
		return AuditBatteryCommand{}, err
	}

	return command, nil
}

func (c AuditBatteryCommand) Validate() error {
	return c.guard.Validate(ErrAuditBatteryCommandIsNotConstructed)
}

func (c AuditBatteryCommand) RunID() kernel.UUID {
	return c.runID
}

// Threshold is the battery percentage under which a drone is alerted.
func (c AuditBatteryCommand) Threshold() int {
	return c.threshold
}

func (c AuditBatteryCommand) StartedAt() time.Time {
	return c.startedAt
}

func (c *AuditBatteryCommand) setThreshold(threshold int) error {
	if threshold <= kernel.BatteryMin || threshold > kernel.BatteryMax {
		return errs.NewValueIsOutOfRangeError("threshold", threshold, kernel.BatteryMin+1, kernel.BatteryMax)
	}
	c.threshold = threshold
	return nil
}
