package impl

import (
	"context"
	"log/slog"
	"maps"
	"time"

	deliverycontext "proptrust/internal/delivery/context"
	"proptrust/internal/domain/entity"
	domainerrors "proptrust/internal/domain/errors"
	"proptrust/internal/domain/repository"
	"proptrust/internal/errors"
	"proptrust/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type auditLog struct {
	auditRepo repository.AuditRepository
	now       func() time.Time
	logger    *slog.Logger
}

// AuditLogParams holds dependencies for the audit log, injected by Fx.
type AuditLogParams struct {
	fx.In

	AuditRepo repository.AuditRepository
	Logger    *slog.Logger
}

// NewAuditLog creates the append-only audit log.
func NewAuditLog(params AuditLogParams) usecase.AuditLog {
	return &auditLog{
		auditRepo: params.AuditRepo,
		now:       utcNow,
		logger:    params.Logger,
	}
}

func (a *auditLog) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// Append assigns a time-ordered id, stamps the entry and writes it. Any failure is returned as
// ErrAuditWriteFailed so the surrounding transition rolls back.
func (a *auditLog) Append(ctx context.Context, audits repository.AuditRepository, entry *entity.AuditEntry) (*entity.AuditEntry, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAuditWriteFailed.WithDetails(err.Error()), "failed to generate audit id")
	}

	written := &entity.AuditEntry{
		ID:        id,
		ActorID:   entry.ActorID,
		Action:    entry.Action,
		TargetID:  entry.TargetID,
		Details:   maps.Clone(entry.Details),
		RequestID: entry.RequestID,
		CreatedAt: entry.CreatedAt,
	}
	if written.Details == nil {
		written.Details = map[string]any{}
	}
	if written.RequestID == "" {
		written.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if written.CreatedAt.IsZero() {
		written.CreatedAt = a.now()
	}

	if err := audits.Append(ctx, written); err != nil {
		a.log(ctx).Error("Failed to append audit entry",
			slog.String("action", string(written.Action)),
			slog.String("target_id", written.TargetID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrAuditWriteFailed.WithDetails(err.Error()), "failed to append audit entry")
	}

	return written, nil
}

// ListForTarget returns the entries of a listing, oldest first.
func (a *auditLog) ListForTarget(ctx context.Context, listingID uuid.UUID) ([]*entity.AuditEntry, error) {
	entries, err := a.auditRepo.ListByTarget(ctx, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries")
	}

	return entries, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
