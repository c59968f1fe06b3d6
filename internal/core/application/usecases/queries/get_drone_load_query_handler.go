package queries

import (
	"context"
	"database/sql"
	"errors"

	"drones/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDroneLoadQueryHandler struct {
	db *gorm.DB
}

func NewGetDroneLoadQueryHandler(db *gorm.DB) GetDroneLoadQueryHandler {
	return GetDroneLoadQueryHandler{db: db}
}

// Handle returns the drone and its items ordered by id. An unknown drone is
// reported as errs.ErrObjectNotFound.
func (h GetDroneLoadQueryHandler) Handle(ctx context.Context, query GetDroneLoadQuery) (GetDroneLoadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDroneLoadQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var response GetDroneLoadQueryResponse
	row := db.Raw(`
		SELECT
			id,
			serial_number,
			model,
			state,
			battery_capacity,
			weight_limit
		FROM drones
		WHERE id = ?
	`, query.DroneID()).Row()
	err := row.Scan(
		&response.ID,
		&response.SerialNumber,
		&response.Model,
		&response.State,
		&response.BatteryCapacity,
		&response.WeightLimit,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDroneLoadQueryResponse{}, errs.NewObjectNotFoundError("drone", query.DroneID())
		}
		return GetDroneLoadQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT
			id,
			name,
			code,
			weight,
			COALESCE(image_content_type, ''),
			image IS NOT NULL AND length(image) > 0
		FROM medications
		WHERE drone_id = ?
		ORDER BY id
	`, query.DroneID()).Rows()
	if err != nil {
		return GetDroneLoadQueryResponse{}, err
	}
	defer rows.Close()

	response.Items = make([]LoadedItem, 0)
	for rows.Next() {
		var item LoadedItem
		if err = rows.Scan(
			&item.ID,
			&item.Name,
			&item.Code,
			&item.Weight,
			&item.ImageContentType,
			&item.HasImage,
		); err != nil {
			return GetDroneLoadQueryResponse{}, err
		}
		response.TotalWeight += item.Weight
		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetDroneLoadQueryResponse{}, err
	}

	response.RemainingCapacity = max(response.WeightLimit-response.TotalWeight, 0)
	return response, nil
}
