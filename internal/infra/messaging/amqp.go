package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"mall-space-booking/internal/pkg/errs"
	"mall-space-booking/internal/usecase/shared"
)

// AMQPPublisher publishes events as persistent JSON messages to a durable queue
// on the default exchange. The connection is opened once and reused.
type AMQPPublisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "rabbitmq: dial failed")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq: channel open failed")
	}

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "rabbitmq: queue declare failed")
	}

	return &AMQPPublisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event shared.ReservationEvent) error {
	body, err := encodeEvent(event)
	if err != nil {
		return errs.Mark(err, errs.ErrEventPublishFailed)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		return errs.Mark(errs.New("rabbitmq: channel closed"), errs.ErrEventPublishFailed)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         event.Type,
		MessageId:    event.ReservationID.String(),
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		slog.Error("rabbitmq: publish failed", "queue", p.queue, "error", err.Error())
		return errs.Mark(errs.Wrap(err, "rabbitmq: publish failed"), errs.ErrEventPublishFailed)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		if err != nil && !errs.Is(err, amqp.ErrClosed) {
			return errs.Wrap(err, "rabbitmq: close connection")
		}
	}
	return nil
}

func encodeEvent(event shared.ReservationEvent) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, errs.Wrap(err, "marshal reservation event")
	}
	return body, nil
}
