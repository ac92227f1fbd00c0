// Package events carries the domain events raised while scoring customers.
// Aggregates collect events during a state transition; the application layer
// drains and publishes them after the transition commits.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is what every scoring event exposes to the publishing
// infrastructure. The concrete types (prediction completed, high-risk
// detected) live with the domain; this interface is all Kafka needs.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() uuid.UUID
	AggregateType() string
	OccurredAt() time.Time
	Payload() []byte

	// PartitionKey groups related events onto one Kafka partition so the
	// completion event and any high-risk alert for the same prediction
	// arrive in order.
	PartitionKey() string
}

// BaseEvent implements DomainEvent; domain event constructors wrap it around
// their serialized payload.
type BaseEvent struct {
	id            uuid.UUID
	eventType     string
	aggregateID   uuid.UUID
	aggregateType string
	occurredAt    time.Time
	payload       []byte
}

// NewBaseEvent stamps an event with a fresh UUID and the current UTC time.
// aggregateID is the prediction the event belongs to.
func NewBaseEvent(eventType string, aggregateID uuid.UUID, aggregateType string, payload []byte) BaseEvent {
	return BaseEvent{
		id:            uuid.New(),
		eventType:     eventType,
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		occurredAt:    time.Now().UTC(),
		payload:       payload,
	}
}

// EventID returns the unique identifier for this event.
func (e BaseEvent) EventID() uuid.UUID {
	return e.id
}

// EventType returns the dotted event type name, e.g.
// "churn.prediction.completed".
func (e BaseEvent) EventType() string {
	return e.eventType
}

// AggregateID returns the identifier of the prediction that raised this event.
func (e BaseEvent) AggregateID() uuid.UUID {
	return e.aggregateID
}

// AggregateType returns the type name of the aggregate that raised this event.
func (e BaseEvent) AggregateType() string {
	return e.aggregateType
}

// OccurredAt returns the time at which this event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Payload returns the serialized event payload.
func (e BaseEvent) Payload() []byte {
	return e.payload
}

// PartitionKey keys on the aggregate, keeping one prediction's events ordered.
func (e BaseEvent) PartitionKey() string {
	return e.aggregateID.String()
}
