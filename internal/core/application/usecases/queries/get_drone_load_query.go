// Package queries contains read operations over the fleet. Handlers run raw SQL
// against the Fleet Store tables and return flat read models; they never load
// aggregates and never take locks.
package queries

import (
	"errors"

	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

var ErrGetDroneLoadQueryIsNotConstructed = errors.New(
	"GetDroneLoadQuery must be created via NewGetDroneLoadQuery constructor",
)

// GetDroneLoadQuery asks for one drone together with the items it carries.
//
// Example:
//
//	query, err := NewGetDroneLoadQuery(droneID)
//	if err != nil {
//	    return err
//	}
//
//	load, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown drone
//	}
//	fmt.Printf("%s carries %dg, %dg left\n", load.SerialNumber, load.TotalWeight, load.RemainingCapacity)
type GetDroneLoadQuery struct {
	droneID int64
	guard   guard.ConstructorGuard
}

func NewGetDroneLoadQuery(droneID int64) (GetDroneLoadQuery, error) {
	if droneID <= 0 {
		return GetDroneLoadQuery{}, errs.NewValueIsInvalidError("droneID")
	}
	return GetDroneLoadQuery{droneID: droneID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDroneLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneLoadQueryIsNotConstructed)
}

func (q GetDroneLoadQuery) DroneID() int64 {
	return q.droneID
}

// LoadedItem is a medication item as shown in a drone's load. The image itself
// is not returned, only whether one is stored.
type LoadedItem struct {
	ID               int64
	Name             string
	Code             string
	Weight           int
	ImageContentType string
	HasImage         bool
}

type GetDroneLoadQueryResponse struct {
	ID                int64
	SerialNumber      string
	Model             string
	State             string
	BatteryCapacity   int
	WeightLimit       int
	TotalWeight       int
	RemainingCapacity int
	Items             []LoadedItem
}
