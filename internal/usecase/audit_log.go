package usecase

import (
	"context"

	"proptrust/internal/domain/entity"
	"proptrust/internal/domain/repository"

	"github.com/google/uuid"
)

// AuditLog records state-changing actions. Entries are never updated or deleted.
type AuditLog interface {
	// Append writes an entry through the given repository, which is bound to the
	// transition's transaction. A failure aborts the transition.
	Append(ctx context.Context, audits repository.AuditRepository, entry *entity.AuditEntry) (*entity.AuditEntry, error)

	// ListForTarget returns the entries of a listing ordered by creation time then id.
	ListForTarget(ctx context.Context, listingID uuid.UUID) ([]*entity.AuditEntry, error)
}
