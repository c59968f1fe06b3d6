package services

import (
	"errors"
	"fmt"

	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/medication"
)

const (
	// MinLoadingBattery is the battery percentage a drone needs to start or continue
	// loading while its payload is still below the weight limit.
	MinLoadingBattery = 25

	// LowBatteryAlertThreshold is the battery percentage under which the battery
	// auditor raises an alert.
	LowBatteryAlertThreshold = 20
)

var (
	ErrOverCapacity  = errors.New("drone weight limit exceeded")
	ErrBatteryTooLow = errors.New("drone battery is too low for loading")
)

// OverCapacityError is returned when accepting an item would push the total
// payload over the drone weight limit.
type OverCapacityError struct {
	Limit     int
	Attempted int
}

func (e *OverCapacityError) Error() string {
	return fmt.Sprintf("%s: limit is %dg, attempted %dg", ErrOverCapacity, e.Limit, e.Attempted)
}

func (e *OverCapacityError) Unwrap() error {
	return ErrOverCapacity
}

// BatteryTooLowError is returned when a drone below the loading battery level
// would be left partially loaded.
type BatteryTooLowError struct {
	Required int
	Actual   int
}

func (e *BatteryTooLowError) Error() string {
	return fmt.Sprintf("%s: required %d%%, actual %d%%", ErrBatteryTooLow, e.Required, e.Actual)
}

func (e *BatteryTooLowError) Unwrap() error {
	return ErrBatteryTooLow
}

// LoadValidator decides whether a medication item may be put on a drone and
// which state the drone ends up in.
//
// Decision table, evaluated in order, with projected = sum(existing) + candidate:
//   - projected > weight limit: OverCapacityError
//   - projected == weight limit: LOADED
//   - battery < minimum loading battery: BatteryTooLowError
//   - otherwise: LOADING
//
// A full drone is accepted whatever its battery level. The validator is pure:
// it neither changes the drone nor the items, the caller applies the returned
// state with drone.TransitionTo and persists the drone before the item.
//
// Example usage:
//
//	validator := services.NewLoadValidator(services.MinLoadingBattery)
//	state, err := validator.Validate(d, itemsOnDrone, candidate)
//	if errors.Is(err, services.ErrOverCapacity) {
//	    // reject, nothing was changed
//	}
type LoadValidator struct {
	minBattery int
}

func NewLoadValidator(minBattery int) LoadValidator {
	return LoadValidator{minBattery: minBattery}
}

func (v LoadValidator) MinBattery() int {
	return v.minBattery
}

// Validate returns the state the drone must take once candidate is loaded.
//
// existing must hold the items currently on the drone. When an item already on
// the drone is being edited, existing must not contain it; candidate carries its
// new weight.
func (v LoadValidator) Validate(d *drone.Drone, existing []*medication.Item, candidate *medication.Item) (drone.State, error) {
	if err := errors.Join(d.Validate(), candidate.Validate()); err != nil {
		return drone.Unknown, err
	}

	current, err := TotalWeight(existing)
	if err != nil {
		return drone.Unknown, err
	}

	limit := d.WeightLimit().Grams()
	projected := current + candidate.Weight().Grams()

	switch {
	case projected > limit:
		return drone.Unknown, &OverCapacityError{Limit: limit, Attempted: projected}
	case projected == limit:
		return drone.Loaded, nil
	case d.Battery().IsBelow(v.minBattery):
		return drone.Unknown, &BatteryTooLowError{Required: v.minBattery, Actual: d.Battery().Percent()}
	default:
		return drone.Loading, nil
	}
}

// TotalWeight sums the weight of items in grams.
func TotalWeight(items []*medication.Item) (int, error) {
	total := 0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return 0, err
		}
		total += item.Weight().Grams()
	}
	return total, nil
}

// ExcludeItem returns items without the item with the given id.
func ExcludeItem(items []*medication.Item, id int64) []*medication.Item {
	out := make([]*medication.Item, 0, len(items))
	for _, item := range items {
		if item.ID() != id {
			out = append(out, item)
		}
	}
	return out
}
