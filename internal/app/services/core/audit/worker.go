package audit

import (
	"context"
	"medicore-admin-service/internal/app/contracts"
	"medicore-admin-service/internal/app/services/shared/auditqueue"
	"medicore-admin-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// Worker drains the audit queue into mongodb. Poison payloads and events
// that cannot be inserted go to the dead-letter queue so the main queue
// never wedges on one bad message.
type Worker struct {
	Queue           *auditqueue.Service
	AuditRepository contracts.AuditRepository
	Log             *zap.Logger
	PollInterval    time.Duration
	BatchSize       int
}

func NewWorker(queue *auditqueue.Service, auditRepository contracts.AuditRepository, logger *zap.Logger) *Worker {
	return &Worker{
		Queue:           queue,
		AuditRepository: auditRepository,
		Log:             logger,
		PollInterval:    2 * time.Second,
		BatchSize:       20,
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	w.Log.Info("audit worker started",
		zap.Duration("poll_interval", w.PollInterval),
		zap.Int("batch_size", w.BatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			w.Log.Info("audit worker stopping")
			return
		case <-ticker.C:
			w.drainOnce(ctx)
		}
	}
}

func (w *Worker) drainOnce(ctx context.Context) {
	items, err := w.Queue.FetchN(ctx, w.BatchSize)
	if err != nil {
		w.Log.Error("audit worker fetch failed", zap.Error(err))
	}

	for _, item := range items {
		if item.Poison {
			if err := w.Queue.DeadLetter(ctx, item); err != nil {
				w.Log.Error("audit worker dead-letter failed",
					zap.Uint64("delivery_tag", item.DeliveryTag),
					zap.Error(err),
				)
			}
			continue
		}

		if err := w.AuditRepository.Insert(ctx, &item.Event); err != nil {
			w.Log.Error("audit worker insert failed, dead-lettering",
				zap.String(constvars.LoggingActorIDKey, item.Event.ActorID),
				zap.String("event_id", item.Event.ID),
				zap.Error(err),
			)
			if err := w.Queue.DeadLetter(ctx, item); err != nil {
				w.Log.Error("audit worker dead-letter failed",
					zap.Uint64("delivery_tag", item.DeliveryTag),
					zap.Error(err),
				)
			}
			continue
		}

		if err := w.Queue.Ack(item.DeliveryTag); err != nil {
			w.Log.Error("audit worker ack failed",
				zap.Uint64("delivery_tag", item.DeliveryTag),
				zap.Error(err),
			)
		}
	}
}
