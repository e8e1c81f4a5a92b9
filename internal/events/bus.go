// Package events records domain events in the outbox table and hands them to
// in-process notifiers once the writing transaction has committed.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/noah-isme/toko-checkout/internal/db/gen"
)

// EventStore defines the persistence operations required by the event bus.
type EventStore interface {
	InsertDomainEvent(ctx context.Context, arg gen.InsertDomainEventParams) (gen.DomainEvent, error)
}

// Notifier reacts to committed events (e.g. job enqueueing).
type Notifier interface {
	Notify(ctx context.Context, event gen.DomainEvent) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, event gen.DomainEvent) error

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, event gen.DomainEvent) error {
	return f(ctx, event)
}

// Bus persists domain events and fans them out to downstream handlers.
type Bus struct {
	Notifiers []Notifier
}

// Emit records the event through store, which is normally the querier of the
// caller's transaction, so the event commits or rolls back with it.
func (b *Bus) Emit(ctx context.Context, store EventStore, topic, aggregateID string, payload any) (gen.DomainEvent, error) {
	if store == nil {
		return gen.DomainEvent{}, errors.New("events: store not configured")
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return gen.DomainEvent{}, errors.New("events: topic is required")
	}
	if strings.TrimSpace(aggregateID) == "" {
		return gen.DomainEvent{}, errors.New("events: aggregate id is required")
	}
	encoded, err := encodePayload(payload)
	if err != nil {
		return gen.DomainEvent{}, fmt.Errorf("events: encode payload: %w", err)
	}
	ev, err := store.InsertDomainEvent(ctx, gen.InsertDomainEventParams{
		Topic:       topic,
		AggregateID: aggregateID,
		Payload:     encoded,
	})
	if err != nil {
		return gen.DomainEvent{}, fmt.Errorf("events: persist event: %w", err)
	}
	return ev, nil
}

// Dispatch hands committed events to every notifier. Notifier failures are
// joined and returned; they never undo the event.
func (b *Bus) Dispatch(ctx context.Context, evs ...gen.DomainEvent) error {
	if b == nil {
		return nil
	}
	var joined error
	for _, ev := range evs {
		for _, notifier := range b.Notifiers {
			if notifier == nil {
				continue
			}
			if err := notifier.Notify(ctx, ev); err != nil {
				joined = errors.Join(joined, fmt.Errorf("events: notify %s: %w", ev.Topic, err))
			}
		}
	}
	return joined
}

func encodePayload(payload any) ([]byte, error) {
	if payload == nil {
		return []byte("{}"), nil
	}
	switch v := payload.(type) {
	case []byte:
		return rawJSON(v)
	case json.RawMessage:
		return rawJSON(v)
	default:
		return json.Marshal(v)
	}
}

func rawJSON(v []byte) ([]byte, error) {
	if len(v) == 0 {
		return []byte("{}"), nil
	}
	if !json.Valid(v) {
		return nil, errors.New("payload is not valid json")
	}
	return append([]byte(nil), v...), nil
}
