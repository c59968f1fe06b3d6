// Package commands contains the operations that change fleet state.
// Every handler follows the same shape: validate the command, open a unit of
// work, act on the aggregates, commit. A deferred rollback discards any partial
// write on failure.
package commands

import (
	"context"

	"drones/internal/core/ports"
)

// Unit of Work interfaces, narrowed to the repositories each handler needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DroneRepoFactory interface {
		DroneRepository() ports.DroneRepository
	}

	MedicationRepoFactory interface {
		MedicationRepository() ports.MedicationRepository
	}

	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// DroneUoW is used by commands that touch drones only.
	DroneUoW interface {
		TxManager
		DroneRepoFactory
	}

	DroneUoWFactory interface {
		Create() DroneUoW
	}

	// LoadUoW is used by commands that put medication on a drone.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DroneRepository().GetForUpdate(ctx, droneID)
	//   items, err := uow.MedicationRepository().FindByDrone(ctx, droneID)
	//   // ... validate, update the drone, then add the item
	//
	//   err = uow.Commit(ctx)
	LoadUoW interface {
		TxManager
		DroneRepoFactory
		MedicationRepoFactory
	}

	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// AuditUoW is used by the battery auditor.
	AuditUoW interface {
		TxManager
		DroneRepoFactory
		AuditRepoFactory
	}

	AuditUoWFactory interface {
		Create() AuditUoW
	}
)
