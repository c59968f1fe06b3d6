package dronerepo

import (
	"context"
	"errors"
	"fmt"

	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDroneRepository implements ports.DroneRepository using GORM.
type GormDroneRepository struct {
	db *gorm.DB
}

// NewGormDroneRepository binds the repository to db, which is either the pool
// or an open transaction handed out by the unit of work.
func NewGormDroneRepository(db *gorm.DB) *GormDroneRepository {
	return &GormDroneRepository{db: db}
}

// Add inserts the drone and assigns the generated id to the aggregate. A
// duplicate serial number is reported as drone.ErrSerialNumberIsTaken when the
// connection was opened with gorm.Config.TranslateError.
func (r *GormDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", drone.ErrSerialNumberIsTaken, dto.SerialNumber)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update writes the drone when the stored version still matches the aggregate
// and bumps the version by one.
func (r *GormDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DroneDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"serial_number":    dto.SerialNumber,
			"model":            dto.Model,
			"weight_limit":     dto.WeightLimit,
			"battery_capacity": dto.BatteryCapacity,
			"state":            dto.State,
			"audit_notified":   dto.AuditNotified,
			"version":          gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, dto.ID)
	}

	aggregate.SetVersion(dto.Version + 1)
	return nil
}

// Get reads the drone without locking it. A missing row is errs.ObjectNotFoundError.
func (r *GormDroneRepository) Get(ctx context.Context, id int64) (*drone.Drone, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate reads the drone with SELECT ... FOR UPDATE. Outside of a
// transaction the lock is released as soon as the statement ends.
//
// Example:
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	d, err := uow.DroneRepository().GetForUpdate(ctx, droneID)
//	if err != nil {
//	    return err // errs.ErrObjectNotFound for an unknown id
//	}
//	// concurrent loads on droneID wait here until Commit or Rollback
func (r *GormDroneRepository) GetForUpdate(ctx context.Context, id int64) (*drone.Drone, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// FindBelowBattery lists drones with battery_capacity < threshold and the given
// audit flag, ordered by id. The battery auditor asks for notified = false, so a
// drone already alerted in the current episode is never picked again.
//
// Example:
//
//	candidates, err := repo.FindBelowBattery(ctx, services.LowBatteryAlertThreshold, false)
func (r *GormDroneRepository) FindBelowBattery(ctx context.Context, threshold int, notified bool) ([]*drone.Drone, error) {
	var dtos []DroneDTO
	if err := r.db.WithContext(ctx).
		Where("battery_capacity < ? AND audit_notified = ?", threshold, notified).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// FindNotifiedAtOrAboveBattery lists flagged drones whose battery is back at or
// above threshold, ordered by id. Their low battery episode is over.
func (r *GormDroneRepository) FindNotifiedAtOrAboveBattery(ctx context.Context, threshold int) ([]*drone.Drone, error) {
	var dtos []DroneDTO
	if err := r.db.WithContext(ctx).
		Where("battery_capacity >= ? AND audit_notified = ?", threshold, true).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormDroneRepository) get(query *gorm.DB, id int64) (*drone.Drone, error) {
	var dto DroneDTO
	if err := query.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("drone", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDroneRepository) missingOrStale(ctx context.Context, id int64) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DroneDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("drone", id)
	}
	return errs.NewVersionIsInvalidError("drone")
}
