package ports

import (
	"context"

	"drones/internal/core/domain/model/audit"
)

// AuditRepository appends audit records. Records are never updated or deleted.
type AuditRepository interface {
	Add(ctx context.Context, record *audit.Record) error
}
