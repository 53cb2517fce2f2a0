package auditqueue

import (
	"context"
	"medicore-admin-service/internal/app/config"
	"medicore-admin-service/internal/app/models"
	"medicore-admin-service/internal/pkg/constvars"
	"medicore-admin-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const confirmTimeout = 5 * time.Second

// confirmation is the broker's pending answer to one publish.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// wireChannel is the slice of the amqp channel the service uses. Every
// publish returns its own confirmation; confirms are never shared between
// callers.
type wireChannel interface {
	publish(ctx context.Context, routingKey string, msg amqp.Publishing) (confirmation, error)
	get(queue string) (amqp.Delivery, bool, error)
	ack(deliveryTag uint64, multiple bool) error
}

type amqpWireChannel struct {
	ch *amqp.Channel
}

func (w amqpWireChannel) publish(ctx context.Context, routingKey string, msg amqp.Publishing) (confirmation, error) {
	return w.ch.PublishWithDeferredConfirmWithContext(ctx, "", routingKey, false, false, msg)
}

func (w amqpWireChannel) get(queue string) (amqp.Delivery, bool, error) {
	return w.ch.Get(queue, false)
}

func (w amqpWireChannel) ack(deliveryTag uint64, multiple bool) error {
	return w.ch.Ack(deliveryTag, multiple)
}

// Service manages the durable audit queue and its dead-letter companion.
// Publishes are persistent and confirm-awaited; the worker drains with
// FetchN/Ack and dead-letters poison messages.
type Service struct {
	ch        wireChannel
	log       *zap.Logger
	queueName string
	dlqName   string
}

func NewService(conn *amqp.Connection, cfg *config.InternalConfig, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		cfg.Audit.QueueName, // name
		true,                // durable
		false,               // autoDelete
		false,               // exclusive
		false,               // noWait
		nil,                 // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		cfg.Audit.DeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	prefetch := cfg.Audit.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:        amqpWireChannel{ch: ch},
		log:       log,
		queueName: cfg.Audit.QueueName,
		dlqName:   cfg.Audit.DeadLetterQueueName,
	}

	return svc, nil
}

// QueuedItem is a fetched delivery and its decoded payload.
type QueuedItem struct {
	DeliveryTag uint64
	Event       models.AuditEvent
	Poison      bool
}

func (s *Service) Publish(ctx context.Context, event *models.AuditEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := s.publishConfirmed(ctx, s.queueName, body); err != nil {
		return err
	}

	s.log.Debug("auditqueue.Publish confirmed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActorIDKey, event.ActorID),
	)
	return nil
}

// FetchN pulls up to max deliveries without blocking. Payloads that fail
// to decode come back flagged poison so the worker can dead-letter them.
func (s *Service) FetchN(ctx context.Context, max int) ([]QueuedItem, error) {
	if max <= 0 {
		max = 1
	}

	items := make([]QueuedItem, 0, max)
	for i := 0; i < max; i++ {
		delivery, ok, err := s.ch.get(s.queueName)
		if err != nil {
			return items, exceptions.ErrQueuePublish(err)
		}
		if !ok {
			break
		}

		item := QueuedItem{DeliveryTag: delivery.DeliveryTag}
		if err := json.Unmarshal(delivery.Body, &item.Event); err != nil {
			s.log.Error("auditqueue.FetchN undecodable payload",
				zap.Uint64("delivery_tag", delivery.DeliveryTag),
				zap.Error(err),
			)
			item.Poison = true
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *Service) Ack(deliveryTag uint64) error {
	return s.ch.ack(deliveryTag, false)
}

// DeadLetter republishes the event to the DLQ, waits for that publish's
// confirmation, then acks the original.
func (s *Service) DeadLetter(ctx context.Context, item QueuedItem) error {
	body, err := json.Marshal(item.Event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := s.publishConfirmed(ctx, s.dlqName, body); err != nil {
		return err
	}

	return s.ch.ack(item.DeliveryTag, false)
}

func (s *Service) publishConfirmed(ctx context.Context, routingKey string, body []byte) error {
	confirmCtx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	confirm, err := s.ch.publish(confirmCtx, routingKey, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	acked, err := confirm.WaitContext(confirmCtx)
	if err != nil {
		return exceptions.ErrQueueConfirm(err)
	}
	if !acked {
		return exceptions.ErrQueueConfirm(nil)
	}
	return nil
}
