package queries

import (
	"errors"

	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

var ErrGetAvailableDronesQueryIsNotConstructed = errors.New(
	"GetAvailableDronesQuery must be created via NewGetAvailableDronesQuery constructor",
)

// GetAvailableDronesQuery lists drones that can take more load: IDLE or LOADING,
// battery at least minBattery and some capacity left.
type GetAvailableDronesQuery struct {
	minBattery int
	guard      guard.ConstructorGuard
}

func NewGetAvailableDronesQuery(minBattery int) (GetAvailableDronesQuery, error) {
	if minBattery < kernel.BatteryMin || minBattery > kernel.BatteryMax {
		return GetAvailableDronesQuery{}, errs.NewValueIsOutOfRangeError(
			"minBattery", minBattery, kernel.BatteryMin, kernel.BatteryMax)
	}
	return GetAvailableDronesQuery{minBattery: minBattery, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAvailableDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDronesQueryIsNotConstructed)
}

func (q GetAvailableDronesQuery) MinBattery() int {
	return q.minBattery
}

type GetAvailableDronesQueryResponse struct {
	ID                int64
	SerialNumber      string
	Model             string
	State             string
	BatteryCapacity   int
	WeightLimit       int
	RemainingCapacity int
}
