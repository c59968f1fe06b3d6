// Package ports defines the Fleet Store contracts the application layer
// depends on. Adapters in internal/adapters/out implement them.
package ports

import (
	"context"

	"drones/internal/core/domain/model/drone"
)

// DroneRepository defines the persistence contract for drone aggregates.
type DroneRepository interface {
	// Add persists a new drone and assigns its id.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists changes to an existing drone. The write succeeds only when
	// the stored version equals aggregate.Version(); otherwise a
	// errs.VersionIsInvalidError is returned.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get retrieves a drone by id, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*drone.Drone, error)

	// GetForUpdate is Get with a row lock held until the surrounding transaction ends.
	// Concurrent loads and audits of the same drone are serialized through it.
	GetForUpdate(ctx context.Context, id int64) (*drone.Drone, error)

	// FindBelowBattery returns drones whose battery is strictly below threshold
	// and whose audit flag equals notified.
	FindBelowBattery(ctx context.Context, threshold int, notified bool) ([]*drone.Drone, error)

	// FindNotifiedAtOrAboveBattery returns flagged drones whose battery is back
	// at or above threshold.
	FindNotifiedAtOrAboveBattery(ctx context.Context, threshold int) ([]*drone.Drone, error)
}
