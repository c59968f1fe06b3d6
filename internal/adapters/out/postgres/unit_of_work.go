// Package postgres is the Fleet Store: GORM repositories for drones, medication
// items and audit records, and a Unit of Work that binds them to one transaction.
//
// Loading an item onto a drone:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	d, err := uow.DroneRepository().GetForUpdate(ctx, droneID) // row stays locked until commit
//	if err != nil {
//	    return err
//	}
//	items, err := uow.MedicationRepository().FindByDrone(ctx, d.ID())
//	if err != nil {
//	    return err
//	}
//
//	// decide the new state, then save the drone before the item
//	if err = uow.DroneRepository().Update(ctx, d); err != nil {
//	    return err
//	}
//	if err = uow.MedicationRepository().Add(ctx, item); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Raising a low battery alert for one drone:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	d, err := uow.DroneRepository().GetForUpdate(ctx, droneID)
//	if err != nil {
//	    return err
//	}
//	if !d.NeedsLowBatteryAlert(threshold) {
//	    return nil // another run got here first
//	}
//	if err = uow.AuditRepository().Add(ctx, record); err != nil {
//	    return err
//	}
//	d.MarkAuditNotified()
//	if err = uow.DroneRepository().Update(ctx, d); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Concurrency:
//   - Each UnitOfWork holds at most one transaction and is not safe for
//     concurrent use; goroutines create their own through the factory.
//   - GetForUpdate serializes writers of the same drone; drone updates also
//     check the stored version and fail with errs.ErrVersionIsInvalid on a
//     mismatch.
//   - Keep transactions short: a locked drone blocks every load against it.
package postgres

import (
	"context"

	"drones/internal/adapters/out/postgres/auditrepo"
	"drones/internal/adapters/out/postgres/dronerepo"
	"drones/internal/adapters/out/postgres/medicationrepo"
	"drones/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
// Every command gets a fresh instance, so transactions never leak between requests
// or between the drones of one audit run.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory wraps db. The handle should be opened with
// TranslateError so that a duplicate serial number surfaces as
// drone.ErrSerialNumberIsTaken.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a UnitOfWork with no transaction.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.DroneRepository().Add(ctx, d); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction. Repositories obtained
// after Begin share it; repositories obtained before Begin use the plain
// connection and write immediately.
//
// Example:
//
//	uow := factory.Create()
//
//	// no transaction: reads the committed row
//	d, err := uow.DroneRepository().Get(ctx, droneID)
//
//	if err = uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	// inside the transaction: the row is locked until Commit or Rollback
//	d, err = uow.DroneRepository().GetForUpdate(ctx, droneID)
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction bound to ctx. Calling it again while one is active
// is a no-op, so nested helpers can call it safely.
//
// Example:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return fmt.Errorf("begin load transaction: %w", err)
//	}
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the transaction's writes permanent and releases its row locks.
// It returns gorm.ErrInvalidTransaction when no transaction is active.
//
// Example:
//
//	if err := uow.Commit(ctx); err != nil {
//	    return fmt.Errorf("commit load: %w", err)
//	}
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. After Commit it returns
// gorm.ErrInvalidTransaction, which deferred rollbacks ignore.
//
// Example:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx) // no-op once committed
//	}()
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// DroneRepository returns drone persistence bound to the active transaction,
// or to the plain connection when there is none.
//
// Example:
//
//	low, err := uow.DroneRepository().FindBelowBattery(ctx, 20, false)
func (uow *GormUnitOfWork) DroneRepository() ports.DroneRepository {
	return dronerepo.NewGormDroneRepository(uow.conn())
}

// MedicationRepository returns item persistence bound like DroneRepository.
//
// Example:
//
//	items, err := uow.MedicationRepository().FindByDrone(ctx, droneID)
func (uow *GormUnitOfWork) MedicationRepository() ports.MedicationRepository {
	return medicationrepo.NewGormMedicationRepository(uow.conn())
}

// AuditRepository returns the append-only audit log bound like DroneRepository.
//
// Example:
//
//	err := uow.AuditRepository().Add(ctx, record)
func (uow *GormUnitOfWork) AuditRepository() ports.AuditRepository {
	return auditrepo.NewGormAuditRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
