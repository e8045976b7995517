// Package events publishes content-change notifications to a message
// broker so downstream consumers (cache purgers, search indexers) can
// react to mutations without polling the record store.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// Channel is the broker channel all content events go to.
const Channel = "content.events"

// Actions recorded on content events.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes one mutation of a content collection.
type Event struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     int64     `json:"id"`
	At     time.Time `json:"at"`
}

// Backend defines the broker-agnostic operations the publisher needs.
type Backend interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
	Close() error
}

// Publisher sends content events to a backend. A nil backend makes every
// publish a no-op, so callers never branch on whether events are enabled.
type Publisher struct {
	backend Backend
}

// NewPublisher constructs a Publisher for the provided backend, which may
// be nil.
func NewPublisher(backend Backend) *Publisher {
	return &Publisher{backend: backend}
}

// Publish sends one event. Broker failures are logged, not propagated;
// a mutation that already hit the store must not fail because the broker
// is down.
func (p *Publisher) Publish(ctx context.Context, entity, action string, id int64) {
	if p == nil || p.backend == nil {
		return
	}

	event := Event{Entity: entity, Action: action, ID: id, At: time.Now()}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	attrs := map[string]string{"entity": entity, "action": action}
	if _, err := p.backend.Publish(ctx, Channel, data, attrs); err != nil {
		log.Printf("events: publish %s %s %d: %v", entity, action, id, err)
	}
}

// Close closes the underlying backend.
func (p *Publisher) Close() error {
	if p == nil || p.backend == nil {
		return nil
	}
	return p.backend.Close()
}
