package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	q "github.com/iliyamo/villa-booking/internal/queue"
)

// Publisher delivers domain events.  Implementations must not panic;
// BookingService logs and ignores their errors.
type Publisher interface {
	PublishReservationCreated(ctx context.Context, event q.ReservationCreatedEvent) error
}

// AMQPPublisher publishes to RabbitMQ, dialing per message.  Booking
// volume is low enough that a held connection is not worth its reconnect
// logic.
type AMQPPublisher struct {
	URL    string
	Logger *zap.Logger
}

// PublishReservationCreated publishes event to the reservation.created
// queue as a persistent JSON message.
func (p *AMQPPublisher) PublishReservationCreated(ctx context.Context, event q.ReservationCreatedEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		p.Logger.Warn("rabbitmq: dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Logger.Warn("rabbitmq: channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		q.ReservationCreatedQueue, // name
		true,                      // durable
		false,                     // autoDelete
		false,                     // exclusive
		false,                     // noWait
		nil,                       // args
	); err != nil {
		p.Logger.Warn("rabbitmq: queue declare failed", zap.Error(err))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		MessageId:    event.ReservationID,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",                        // default exchange
		q.ReservationCreatedQueue, // routing key = queue name
		false,                     // mandatory
		false,                     // immediate
		pub,
	); err != nil {
		p.Logger.Warn("rabbitmq: publish failed", zap.Error(err))
		return err
	}
	return nil
}
