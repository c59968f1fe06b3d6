// Package dronerepo persists the drone aggregate with GORM.
package dronerepo

import (
	"drones/internal/core/domain/model/drone"
	"drones/internal/core/domain/model/kernel"
)

// DroneDTO is the row layout of the drones table. State and model are stored by
// name so the table stays readable for the query side.
type DroneDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	SerialNumber    string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Model           string `gorm:"type:varchar(20);not null"`
	WeightLimit     int    `gorm:"type:int;not null"`
	BatteryCapacity int    `gorm:"type:smallint;not null;index:idx_drones_battery_audit,priority:1"`
	State           string `gorm:"type:varchar(16);not null"`
	AuditNotified   bool   `gorm:"not null;default:false;index:idx_drones_battery_audit,priority:2"`
	Version         int64  `gorm:"not null;default:0"`
}

func (DroneDTO) TableName() string {
	return "drones"
}

func fromDomain(aggregate *drone.Drone) DroneDTO {
	return DroneDTO{
		ID:              aggregate.ID(),
		SerialNumber:    aggregate.SerialNumber(),
		Model:           aggregate.Model().String(),
		WeightLimit:     aggregate.WeightLimit().Grams(),
		BatteryCapacity: aggregate.Battery().Percent(),
		State:           aggregate.State().String(),
		AuditNotified:   aggregate.AuditNotified(),
		Version:         aggregate.Version(),
	}
}

func toDomain(dto DroneDTO) (*drone.Drone, error) {
	model, err := drone.ParseModel(dto.Model)
	if err != nil {
		return nil, err
	}

	state, err := drone.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	weightLimit, err := kernel.NewWeight(dto.WeightLimit)
	if err != nil {
		return nil, err
	}

	battery, err := kernel.NewBattery(dto.BatteryCapacity)
	if err != nil {
		return nil, err
	}

	return drone.RestoreDrone(
		dto.ID,
		dto.SerialNumber,
		model,
		weightLimit,
		battery,
		state,
		dto.AuditNotified,
		dto.Version,
	)
}

func toDomainList(dtos []DroneDTO) ([]*drone.Drone, error) {
	drones := make([]*drone.Drone, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}
	return drones, nil
}
