package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// TaskQueue is what request handlers see: enqueue a task kind (routing key)
// with a JSON payload. The worker process owns delivery and retry.
type TaskQueue interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Publisher publishes tasks to a durable topic exchange on RabbitMQ.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        b,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopQueue logs tasks instead of publishing them. Used when the broker is
// unreachable so the API stays usable in development.
type NopQueue struct{}

func (NopQueue) PublishJSON(_ context.Context, key string, v any) error {
	b, _ := json.Marshal(v)
	log.Printf("[mq] dropped task key=%s payload=%s (no broker connection)", key, b)
	return nil
}
