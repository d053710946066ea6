package events

import (
	"context"
	"encoding/json"
	"fmt"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// paymentEventPublisher pushes payment outcome events to a durable queue with
// publisher confirms. Downstream consumers (billing, notifications) rely on
// the coordinator publishing at most one event per order.
type paymentEventPublisher struct {
	ch       *amqp.Channel
	Log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

func NewPaymentEventPublisher(conn *amqp.Connection, logger *zap.Logger) (contracts.PaymentEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.PaymentOutcomeQueueName, // name
		true,                              // durable
		false,                             // autoDelete
		false,                             // exclusive
		false,                             // noWait
		nil,                               // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &paymentEventPublisher{
		ch:       ch,
		Log:      logger,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (p *paymentEventPublisher) PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("paymentEventPublisher.PublishPaymentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, event.OrderID),
		zap.String(constvars.LoggingPaymentStatusKey, event.Status),
		zap.String(constvars.LoggingQueueKey, constvars.PaymentOutcomeQueueName),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := p.ch.PublishWithContext(ctx, "", constvars.PaymentOutcomeQueueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.PaymentOutcomeQueueName)
	}

	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), constvars.PaymentOutcomeQueueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), constvars.PaymentOutcomeQueueName)
	}
	return nil
}
