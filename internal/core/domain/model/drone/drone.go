package drone

import (
	"errors"
	"fmt"

	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

const serialNumberMaxLength = 100

var (
	ErrDroneIsNotConstructed  = errors.New("Drone must be created via NewDrone constructor")
	ErrSerialNumberIsRequired = errs.NewValueIsRequiredError("serialNumber")
	ErrIDIsAlreadyAssigned    = errors.New("drone id is already assigned")
	ErrTransitionIsNotAllowed = errors.New("state transition is not allowed")
	ErrSerialNumberIsTaken    = errors.New("serial number is already registered")
)

// Drone is the fleet aggregate. It carries the load limit and battery level the
// load validator decides on and the audit flag the battery auditor maintains.
type Drone struct {
	id            int64
	serialNumber  string
	model         Model
	weightLimit   kernel.Weight
	battery       kernel.Battery
	state         State
	auditNotified bool
	version       int64
	guard         guard.ConstructorGuard
}

// NewDrone registers a drone that is IDLE and not yet audited. The id is
// assigned by the store on Add.
func NewDrone(serialNumber string, model Model, weightLimit kernel.Weight, battery kernel.Battery) (*Drone, error) {
	d := &Drone{
		state: Idle,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setSerialNumber(serialNumber),
		d.setModel(model),
		d.setWeightLimit(weightLimit),
		d.setBattery(battery),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDrone rebuilds a persisted drone.
func RestoreDrone(
	id int64,
	serialNumber string,
	model Model,
	weightLimit kernel.Weight,
	battery kernel.Battery,
	state State,
	auditNotified bool,
	version int64,
) (*Drone, error) {
	d := &Drone{
		id:            id,
		auditNotified: auditNotified,
		version:       version,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setSerialNumber(serialNumber),
		d.setModel(model),
		d.setWeightLimit(weightLimit),
		d.setBattery(battery),
		d.setState(state),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

func (d *Drone) ID() int64 {
	return d.id
}

func (d *Drone) SerialNumber() string {
	return d.serialNumber
}

func (d *Drone) Model() Model {
	return d.model
}

func (d *Drone) WeightLimit() kernel.Weight {
	return d.weightLimit
}

func (d *Drone) Battery() kernel.Battery {
	return d.battery
}

func (d *Drone) State() State {
	return d.state
}

func (d *Drone) AuditNotified() bool {
	return d.auditNotified
}

// Version is the optimistic concurrency counter the store compares on update.
func (d *Drone) Version() int64 {
	return d.version
}

// AssignID stores the identity generated by the store. It can be called once.
func (d *Drone) AssignID(id int64) error {
	if d.id != 0 {
		return ErrIDIsAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive id", id))
	}
	d.id = id
	return nil
}

// SetVersion records the version written by the store after a successful update.
func (d *Drone) SetVersion(version int64) {
	d.version = version
}

// TransitionTo moves the drone to target if the state machine allows it.
func (d *Drone) TransitionTo(target State) error {
	if !d.state.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionIsNotAllowed, d.state, target)
	}
	d.state = target
	return nil
}

// NeedsLowBatteryAlert reports whether the battery is below threshold and no
// alert has been raised yet for the current episode.
func (d *Drone) NeedsLowBatteryAlert(threshold int) bool {
	return !d.auditNotified && d.battery.IsBelow(threshold)
}

// NeedsAlertReset reports whether a raised alert can be cleared because the
// battery is back at or above threshold.
func (d *Drone) NeedsAlertReset(threshold int) bool {
	return d.auditNotified && !d.battery.IsBelow(threshold)
}

func (d *Drone) MarkAuditNotified() {
	d.auditNotified = true
}

func (d *Drone) ClearAuditNotified() {
	d.auditNotified = false
}

func (d *Drone) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return ErrSerialNumberIsRequired
	}
	if len(serialNumber) > serialNumberMaxLength {
		return errs.NewValueIsOutOfRangeError("serialNumber length", len(serialNumber), 1, serialNumberMaxLength)
	}
	d.serialNumber = serialNumber
	return nil
}

func (d *Drone) setModel(model Model) error {
	if err := model.Validate(); err != nil {
		return err
	}
	d.model = model
	return nil
}

func (d *Drone) setWeightLimit(weightLimit kernel.Weight) error {
	if err := weightLimit.Validate(); err != nil {
		return err
	}
	d.weightLimit = weightLimit
	return nil
}

func (d *Drone) setBattery(battery kernel.Battery) error {
	if err := battery.Validate(); err != nil {
		return err
	}
	d.battery = battery
	return nil
}

func (d *Drone) setState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	d.state = state
	return nil
}
