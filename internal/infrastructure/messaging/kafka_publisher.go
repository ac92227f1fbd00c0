// Package messaging publishes domain events to Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/FereolKpavode/CHURN/internal/domain/port"
	"github.com/FereolKpavode/CHURN/pkg/events"
	"github.com/FereolKpavode/CHURN/pkg/kafka"
)

// envelope is the wire shape of a published event. The domain payload rides
// inside it untouched so consumers can route on the envelope alone.
type envelope struct {
	EventID       uuid.UUID       `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateID   uuid.UUID       `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// KafkaPublisher implements port.EventPublisher over the shared Kafka producer.
// Events are keyed by aggregate ID so all events of one prediction land on the
// same partition, in order.
type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *slog.Logger
}

var _ port.EventPublisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher creates a publisher writing to the given topic.
func NewKafkaPublisher(producer *kafka.Producer, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends domain events to Kafka.
func (p *KafkaPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		env := envelope{
			EventID:       evt.EventID(),
			EventType:     evt.EventType(),
			AggregateID:   evt.AggregateID(),
			AggregateType: evt.AggregateType(),
			OccurredAt:    evt.OccurredAt(),
			Payload:       evt.Payload(),
		}

		value, err := json.Marshal(env)
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", evt.EventType(), err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(evt.PartitionKey()),
			Value: value,
			Headers: map[string]string{
				"event_type": evt.EventType(),
			},
		})

		p.logger.Info("publishing event",
			slog.String("event_type", evt.EventType()),
			slog.String("topic", p.topic),
			slog.Int("payload_size", len(value)),
		)
	}

	return p.producer.Publish(ctx, p.topic, messages...)
}
