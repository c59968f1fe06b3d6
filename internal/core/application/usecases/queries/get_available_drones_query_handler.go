package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetAvailableDronesQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableDronesQueryHandler(db *gorm.DB) GetAvailableDronesQueryHandler {
	return GetAvailableDronesQueryHandler{db: db}
}

// Handle returns the available drones ordered by remaining capacity, largest first.
// Drones below the query's battery level are excluded, including those that
// could still accept an exact-fit item.
func (h GetAvailableDronesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDronesQuery,
) ([]GetAvailableDronesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.serial_number,
			d.model,
			d.state,
			d.battery_capacity,
			d.weight_limit,
			d.weight_limit - COALESCE(SUM(m.weight), 0) AS remaining
		FROM drones d
		LEFT JOIN medications m ON m.drone_id = d.id
		WHERE d.state IN ('IDLE', 'LOADING')
			AND d.battery_capacity >= ?
		GROUP BY d.id
		HAVING d.weight_limit - COALESCE(SUM(m.weight), 0) > 0
		ORDER BY remaining DESC, d.id
	`, query.MinBattery()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drones := make([]GetAvailableDronesQueryResponse, 0)
	for rows.Next() {
		var d GetAvailableDronesQueryResponse
		if err = rows.Scan(
			&d.ID,
			&d.SerialNumber,
			&d.Model,
			&d.State,
			&d.BatteryCapacity,
			&d.WeightLimit,
			&d.RemainingCapacity,
		); err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drones, nil
}
