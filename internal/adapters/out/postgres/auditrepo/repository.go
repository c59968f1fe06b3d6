package auditrepo

import (
	"context"

	"drones/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditRepository implements ports.AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Add inserts the record and assigns the generated id to it. Records are never
// updated or deleted.
//
// Example:
//
//	record, err := audit.NewLowBatteryRecord(runID, d.ID(), d.SerialNumber(), d.Battery(), threshold, startedAt)
//	if err != nil {
//	    return err
//	}
//	if err = uow.AuditRepository().Add(ctx, record); err != nil {
//	    return err
//	}
func (r *GormAuditRepository) Add(ctx context.Context, record *audit.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return record.AssignID(dto.ID)
}
