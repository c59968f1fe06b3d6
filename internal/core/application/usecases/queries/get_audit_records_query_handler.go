package queries

import (
	"context"

	"drones/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAuditRecordsQueryHandler struct {
	db *gorm.DB
}

func NewGetAuditRecordsQueryHandler(db *gorm.DB) GetAuditRecordsQueryHandler {
	return GetAuditRecordsQueryHandler{db: db}
}

// Handle returns up to query.Limit() records, newest first.
func (h GetAuditRecordsQueryHandler) Handle(
	ctx context.Context,
	query GetAuditRecordsQuery,
) ([]GetAuditRecordsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			run_id,
			drone_id,
			message,
			created_by,
			created_at
		FROM audits
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]GetAuditRecordsQueryResponse, 0)
	for rows.Next() {
		var record GetAuditRecordsQueryResponse
		var runID uuid.UUID

		if err = rows.Scan(
			&record.ID,
			&runID,
			&record.DroneID,
			&record.Message,
			&record.CreatedBy,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(runID[:])
		if idErr != nil {
			return nil, idErr
		}
		record.RunID = id
		record.CreatedAt = record.CreatedAt.UTC()

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
