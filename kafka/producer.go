package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
)

// Producer publishes order lifecycle events, keyed by order number so all
// events for one order land on the same partition.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a producer for the given brokers and topic.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishOrderPlaced emits an order.placed event.
func (p *Producer) PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error {
	return p.publish(ctx, event.OrderNumber, event)
}

// PublishStatusChanged emits an order.status_changed event.
func (p *Producer) PublishStatusChanged(ctx context.Context, event models.OrderStatusChangedEvent) error {
	return p.publish(ctx, event.OrderNumber, event)
}

func (p *Producer) publish(ctx context.Context, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
