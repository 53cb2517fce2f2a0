package contracts

import (
	"context"
	"medicore-admin-service/internal/app/models"
)

// AuditQueue publishes activity-trail events. A failed publish never fails
// the originating mutation; callers log and drop.
type AuditQueue interface {
	Publish(ctx context.Context, event *models.AuditEvent) error
}

type AuditEventFilter struct {
	ActorID string
	Entity  string
}

type AuditRepository interface {
	Insert(ctx context.Context, event *models.AuditEvent) error
	FindPage(ctx context.Context, filter AuditEventFilter, page, pageSize int) ([]models.AuditEvent, int, error)
	FindRecent(ctx context.Context, limit int) ([]models.AuditEvent, error)
}

type AuditUsecase interface {
	// Record builds an event from the caller's session and hands it to the
	// queue, swallowing publish failures.
	Record(ctx context.Context, action, entity, entityID, detail string)
	FindEvents(ctx context.Context, filter AuditEventFilter, page, pageSize int) ([]models.AuditEvent, int, error)
}
