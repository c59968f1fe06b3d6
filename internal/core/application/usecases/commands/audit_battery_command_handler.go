package commands

import (
	"context"
	"errors"
	"fmt"

	"drones/internal/core/domain/model/audit"
	"drones/internal/core/domain/model/kernel"
)

// AuditReport summarizes one battery audit run. Notified counts drones that got
// a new audit record, Cleared counts alerts reset after recharging and Skipped
// counts candidates that no longer qualified once their row was locked.
type AuditReport struct {
	RunID    kernel.UUID
	Notified int
	Cleared  int
	Skipped  int
	Failed   int
}

// AuditBatteryCommandHandler raises one audit record per low-battery episode.
//
// Candidates are selected without a transaction. Each drone is then handled in
// its own unit of work: the row is locked and the condition re-checked before
// anything is written, so overlapping runs cannot alert the same drone twice.
// A failure on one drone is collected and the run moves on to the next.
type AuditBatteryCommandHandler struct {
	uowFactory AuditUoWFactory
}

func NewAuditBatteryCommandHandler(uowFactory AuditUoWFactory) AuditBatteryCommandHandler {
	return AuditBatteryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the report together with the joined per-drone errors.
func (h *AuditBatteryCommandHandler) Handle(ctx context.Context, cmd AuditBatteryCommand) (AuditReport, error) {
	if err := cmd.Validate(); err != nil {
		return AuditReport{}, err
	}

	report := AuditReport{RunID: cmd.RunID()}
	droneRepo := h.uowFactory.Create().DroneRepository()

	low, err := droneRepo.FindBelowBattery(ctx, cmd.Threshold(), false)
	if err != nil {
		return report, fmt.Errorf("find low battery drones: %w", err)
	}

	var failures []error
	for _, candidate := range low {
		notified, notifyErr := h.notify(ctx, cmd, candidate.ID())
		switch {
		case notifyErr != nil:
			report.Failed++
			failures = append(failures, fmt.Errorf("notify drone %d: %w", candidate.ID(), notifyErr))
		case notified:
			report.Notified++
		default:
			report.Skipped++
		}
	}

	recovered, err := droneRepo.FindNotifiedAtOrAboveBattery(ctx, cmd.Threshold())
	if err != nil {
		failures = append(failures, fmt.Errorf("find recharged drones: %w", err))
		return report, errors.Join(failures...)
	}

	for _, candidate := range recovered {
		cleared, clearErr := h.clear(ctx, cmd, candidate.ID())
		switch {
		case clearErr != nil:
			report.Failed++
			failures = append(failures, fmt.Errorf("clear drone %d: %w", candidate.ID(), clearErr))
		case cleared:
			report.Cleared++
		default:
			report.Skipped++
		}
	}

	return report, errors.Join(failures...)
}

func (h *AuditBatteryCommandHandler) notify(ctx context.Context, cmd AuditBatteryCommand, droneID int64) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	aggregate, err := droneRepo.GetForUpdate(ctx, droneID)
	if err != nil {
		return false, err
	}

	if !aggregate.NeedsLowBatteryAlert(cmd.Threshold()) {
		return false, nil
	}

	record, err := audit.NewLowBatteryRecord(
		cmd.RunID(),
		aggregate.ID(),
		aggregate.SerialNumber(),
		aggregate.Battery(),
		cmd.Threshold(),
		cmd.StartedAt(),
	)
	if err != nil {
		return false, err
	}

	if err = uow.AuditRepository().Add(ctx, record); err != nil {
		return false, err
	}

	aggregate.MarkAuditNotified()
	if err = droneRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (h *AuditBatteryCommandHandler) clear(ctx context.Context, cmd AuditBatteryCommand, droneID int64) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()
	aggregate, err := droneRepo.GetForUpdate(ctx, droneID)
	if err != nil {
		return false, err
	}

	if !aggregate.NeedsAlertReset(cmd.Threshold()) {
		return false, nil
	}

	aggregate.ClearAuditNotified()
	if err = droneRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
