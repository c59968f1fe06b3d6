package audit

import (
	"errors"
	"fmt"
	"time"

	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

// SystemActor is the author of records raised by the battery auditor.
const SystemActor = "AuditSystemJob"

var (
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewLowBatteryRecord constructor")
	ErrMessageIsRequired      = errs.NewValueIsRequiredError("message")
	ErrCreatedByIsRequired    = errs.NewValueIsRequiredError("createdBy")
	ErrCreatedAtIsRequired    = errs.NewValueIsRequiredError("createdAt")
)

// Record is an append-only audit log entry. Once built it exposes no mutators
// apart from AssignID, which the store calls when the record is inserted.
type Record struct {
	id        int64
	runID     kernel.UUID
	droneID   int64
	message   string
	createdBy string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewLowBatteryRecord builds the record raised for a drone whose battery fell
// below threshold during the audit run runID.
func NewLowBatteryRecord(
	runID kernel.UUID,
	droneID int64,
	serialNumber string,
	battery kernel.Battery,
	threshold int,
	now time.Time,
) (*Record, error) {
	if err := battery.Validate(); err != nil {
		return nil, err
	}
	message := fmt.Sprintf("Drone %s battery is below %d%% (current: %d%%)",
		serialNumber, threshold, battery.Percent())

	return RestoreRecord(0, runID, droneID, message, SystemActor, now)
}

func RestoreRecord(
	id int64,
	runID kernel.UUID,
	droneID int64,
	message string,
	createdBy string,
	createdAt time.Time,
) (*Record, error) {
	r := &Record{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setRunID(runID),
		r.setDroneID(droneID),
		r.setMessage(message),
		r.setCreatedBy(createdBy),
		r.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

func (r *Record) ID() int64 {
	return r.id
}

func (r *Record) RunID() kernel.UUID {
	return r.runID
}

func (r *Record) DroneID() int64 {
	return r.droneID
}

func (r *Record) Message() string {
	return r.message
}

func (r *Record) CreatedBy() string {
	return r.createdBy
}

func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record) AssignID(id int64) error {
	if r.id != 0 {
		return errors.New("audit record id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive id", id))
	}
	r.id = id
	return nil
}

func (r *Record) setRunID(runID kernel.UUID) error {
	if err := runID.Validate(); err != nil {
		return err
	}
	r.runID = runID
	return nil
}

func (r *Record) setDroneID(droneID int64) error {
	if droneID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("droneID", fmt.Errorf("%d is not a positive id", droneID))
	}
	r.droneID = droneID
	return nil
}

func (r *Record) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}
	r.message = message
	return nil
}

func (r *Record) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return ErrCreatedByIsRequired
	}
	r.createdBy = createdBy
	return nil
}

func (r *Record) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	r.createdAt = createdAt.UTC()
	return nil
}
