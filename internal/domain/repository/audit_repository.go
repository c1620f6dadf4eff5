package repository

import (
	"context"

	"proptrust/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditRepository persists the append-only audit trail. It deliberately has no update or
// delete operation.
type AuditRepository interface {
	// Append inserts a new entry.
	Append(ctx context.Context, entry *entity.AuditEntry) error

	// ListByTarget returns every entry for a listing ordered by creation time ascending.
	ListByTarget(ctx context.Context, targetID uuid.UUID) ([]*entity.AuditEntry, error)
}
