// Package events defines the domain event contract and an in-memory
// dispatcher. Status and timestamp changes are published for read-only
// observers (notification and dashboard consumers); the engine never calls
// them directly.
package events

import (
	"time"
)

// DomainEvent represents a domain event interface
type DomainEvent interface {
	// GetAggregateID returns the ID of the aggregate that generated the event
	GetAggregateID() string

	// GetEventType returns the type/name of the event
	GetEventType() string

	// GetOccurredAt returns when the event occurred
	GetOccurredAt() time.Time
}

// BaseEvent provides common fields for all domain events
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (e BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

func (e BaseEvent) GetEventType() string {
	return e.EventType
}

func (e BaseEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}

// EventHandler represents a handler for domain events
type EventHandler interface {
	Handle(event DomainEvent) error
	CanHandle(eventType string) bool
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishAll(events []DomainEvent) error
}

// EventSubscriber subscribes to domain events
type EventSubscriber interface {
	Subscribe(eventType string, handler EventHandler) error
	Unsubscribe(eventType string, handler EventHandler) error
}

// EventDispatcher combines publisher and subscriber functionality
type EventDispatcher interface {
	EventPublisher
	EventSubscriber

	Start() error
	Stop() error
}
