// Package auditrepo appends audit records with GORM.
package auditrepo

import (
	"time"

	"drones/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

type AuditRecordDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	RunID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DroneID   int64     `gorm:"not null;index"`
	Message   string    `gorm:"type:text;not null"`
	CreatedBy string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;index"`
}

func (AuditRecordDTO) TableName() string {
	return "audits"
}

func fromDomain(record *audit.Record) AuditRecordDTO {
	return AuditRecordDTO{
		ID:        record.ID(),
		RunID:     record.RunID().Bytes(),
		DroneID:   record.DroneID(),
		Message:   record.Message(),
		CreatedBy: record.CreatedBy(),
		CreatedAt: record.CreatedAt(),
	}
}
