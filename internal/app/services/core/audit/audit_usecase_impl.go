package audit

import (
	"context"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/metrics"
	"medicore-admin-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	auditUsecaseInstance contracts.AuditUsecase
	onceAuditUsecase     sync.Once
)

type auditUsecase struct {
	AuditQueue      contracts.AuditQueue
	AuditRepository contracts.AuditRepository
	Log             *zap.Logger
}

func NewAuditUsecase(auditQueue contracts.AuditQueue, auditRepository contracts.AuditRepository, logger *zap.Logger) contracts.AuditUsecase {
	onceAuditUsecase.Do(func() {
		usecase := &auditUsecase{
			AuditQueue:      auditQueue,
			AuditRepository: auditRepository,
			Log:             logger,
		}
		auditUsecaseInstance = usecase
	})
	return auditUsecaseInstance
}

// Record publishes an activity-trail event built from the caller's session.
// A publish failure is logged and dropped: the mutation that triggered it
// already succeeded and must not be rolled back over bookkeeping.
func (uc *auditUsecase) Record(ctx context.Context, action, entity, entityID, detail string) {
	requestID := utils.RequestIDFromContext(ctx)

	event := &models.AuditEvent{
		ID:         uuid.NewString(),
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Detail:     detail,
		RequestID:  requestID,
		RecordedAt: time.Now().UTC(),
	}
	if session := utils.SessionFromContext(ctx); session != nil {
		event.ActorID = session.UserID
		event.ActorName = session.Name
		event.ActorRole = session.Role
	}

	if err := uc.AuditQueue.Publish(ctx, event); err != nil {
		metrics.AuditEventsDropped.Inc()
		uc.Log.Error("auditUsecase.Record publish failed, event dropped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("action", action),
			zap.String("entity", entity),
			zap.Error(err),
		)
		return
	}

	metrics.AuditEventsPublished.Inc()
}

func (uc *auditUsecase) FindEvents(ctx context.Context, filter contracts.AuditEventFilter, page, pageSize int) ([]models.AuditEvent, int, error) {
	return uc.AuditRepository.FindPage(ctx, filter, page, pageSize)
}
