package queries

import (
	"errors"
	"time"

	"drones/internal/core/domain/model/kernel"
	"drones/internal/pkg/errs"
	"drones/internal/pkg/guard"
)

const (
	DefaultAuditRecordsLimit = 50
	MaxAuditRecordsLimit     = 500
)

var ErrGetAuditRecordsQueryIsNotConstructed = errors.New(
	"GetAuditRecordsQuery must be created via NewGetAuditRecordsQuery constructor",
)

// GetAuditRecordsQuery reads the newest audit records. A limit of 0 means
// DefaultAuditRecordsLimit.
type GetAuditRecordsQuery struct {
	limit int
	guard guard.ConstructorGuard
}

func NewGetAuditRecordsQuery(limit int) (GetAuditRecordsQuery, error) {
	if limit == 0 {
		limit = DefaultAuditRecordsLimit
	}
	if limit < 1 || limit > MaxAuditRecordsLimit {
		return GetAuditRecordsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxAuditRecordsLimit)
	}
	return GetAuditRecordsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAuditRecordsQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditRecordsQueryIsNotConstructed)
}

func (q GetAuditRecordsQuery) Limit() int {
	return q.limit
}

type GetAuditRecordsQueryResponse struct {
	ID        int64
	RunID     kernel.UUID
	DroneID   int64
	Message   string
	CreatedBy string
	CreatedAt time.Time
}
