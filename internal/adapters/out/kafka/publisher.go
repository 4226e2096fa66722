// Package kafka provides the Kafka-backed implementation of the lifecycle
// event publisher. One logical topic exists per event kind; messages are
// keyed by order id so all events for an order land in one partition.
package kafka

import (
	"context"
	"encoding/json"

	"orders/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// Topic names for the three lifecycle event kinds.
const (
	TopicOrderCreated       = "order-created"
	TopicOrderStatusUpdated = "order-status-updated"
	TopicOrderCancelled     = "order-cancelled"
)

// messageWriter is the slice of kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher implements ports.EventPublisher over a shared kafka.Writer.
// It performs a single write attempt per event: callers treat failures as
// best-effort losses, so the publisher neither retries nor buffers.
type Publisher struct {
	writer messageWriter
}

// NewPublisher creates a publisher over the given writer. The writer must
// be created without a fixed topic; each message names its own.
func NewPublisher(writer *kafka.Writer) *Publisher {
	return &Publisher{writer: writer}
}

// NewWriter creates the shared kafka.Writer for the given brokers.
func NewWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// PublishOrderCreated emits an order-created message keyed by order id.
func (p *Publisher) PublishOrderCreated(ctx context.Context, event order.CreatedEvent) error {
	return p.publish(ctx, TopicOrderCreated, event.OrderID, event)
}

// PublishOrderStatusUpdated emits an order-status-updated message keyed by
// order id.
func (p *Publisher) PublishOrderStatusUpdated(ctx context.Context, event order.StatusUpdatedEvent) error {
	return p.publish(ctx, TopicOrderStatusUpdated, event.OrderID, event)
}

// PublishOrderCancelled emits an order-cancelled message keyed by order id.
func (p *Publisher) PublishOrderCancelled(ctx context.Context, event order.CancelledEvent) error {
	return p.publish(ctx, TopicOrderCancelled, event.OrderID, event)
}

func (p *Publisher) publish(ctx context.Context, topic, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
}
