package notifications

import (
	"avalia-service/internal/app/contracts"
	"avalia-service/internal/pkg/constvars"
	"avalia-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes assessment lifecycle events to a durable RabbitMQ queue
// consumed by the notification worker.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	queue    string
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService opens a channel, declares the durable queue and enables
// publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.NotificationQueueService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		queue:    queueName,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}
	return svc, nil
}

// PublishAssessmentEvent publishes the event with persistence and waits for
// the broker confirm.
func (s *Service) PublishAssessmentEvent(ctx context.Context, event *contracts.AssessmentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("NotificationQueue.PublishAssessmentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("event_type", event.Type),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queue, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublish(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}
	return nil
}
