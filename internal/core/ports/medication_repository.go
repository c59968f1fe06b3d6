package ports

import (
	"context"

	"drones/internal/core/domain/model/medication"
)

// MedicationRepository defines the persistence contract for medication items.
type MedicationRepository interface {
	// Add persists a new item and assigns its id.
	Add(ctx context.Context, item *medication.Item) error

	Update(ctx context.Context, item *medication.Item) error

	// Get retrieves an item by id, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*medication.Item, error)

	// FindByDrone returns every item currently loaded on the drone.
	FindByDrone(ctx context.Context, droneID int64) ([]*medication.Item, error)
}
