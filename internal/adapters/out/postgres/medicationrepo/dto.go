// Package medicationrepo persists medication items with GORM.
package medicationrepo

import (
	"drones/internal/adapters/out/postgres/dronerepo"
	"drones/internal/core/domain/model/kernel"
	"drones/internal/core/domain/model/medication"
)

// MedicationDTO is the row layout of the medications table. drone_id is the
// weak back reference to the carrying drone; deleting the drone nulls it.
type MedicationDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"type:varchar(255);not null"`
	Code             string `gorm:"type:varchar(255);not null"`
	Weight           int    `gorm:"type:int;not null"`
	Image            []byte `gorm:"type:bytea"`
	ImageContentType string `gorm:"type:varchar(100)"`
	DroneID          *int64 `gorm:"index"`

	Drone *dronerepo.DroneDTO `gorm:"foreignKey:DroneID;constraint:OnDelete:SET NULL"`
}

func (MedicationDTO) TableName() string {
	return "medications"
}

func fromDomain(item *medication.Item) MedicationDTO {
	return MedicationDTO{
		ID:               item.ID(),
		Name:             item.Name(),
		Code:             item.Code(),
		Weight:           item.Weight().Grams(),
		Image:            item.Image(),
		ImageContentType: item.ImageContentType(),
		DroneID:          item.DroneID(),
	}
}

func toDomain(dto MedicationDTO) (*medication.Item, error) {
	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	return medication.RestoreItem(
		dto.ID,
		dto.Name,
		dto.Code,
		weight,
		dto.Image,
		dto.ImageContentType,
		dto.DroneID,
	)
}
