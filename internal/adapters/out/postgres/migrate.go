package postgres

import (
	"fmt"

	"drones/internal/adapters/out/postgres/auditrepo"
	"drones/internal/adapters/out/postgres/dronerepo"
	"drones/internal/adapters/out/postgres/medicationrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the drones, medications and audits tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&dronerepo.DroneDTO{},
		&medicationrepo.MedicationDTO{},
		&auditrepo.AuditRecordDTO{},
	); err != nil {
		return fmt.Errorf("migrate fleet store: %w", err)
	}
	return nil
}
