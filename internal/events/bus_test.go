package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/db/memdb"
	"github.com/noah-isme/toko-checkout/internal/events"
)

type captureNotifier struct {
	events []gen.DomainEvent
}

func (c *captureNotifier) Notify(_ context.Context, event gen.DomainEvent) error {
	c.events = append(c.events, event)
	return nil
}

func TestEmitPersistsWithinTransaction(t *testing.T) {
	m := memdb.New()
	bus := &events.Bus{}
	ctx := context.Background()

	var emitted gen.DomainEvent
	require.NoError(t, m.InTx(ctx, func(q gen.Querier) error {
		var err error
		emitted, err = bus.Emit(ctx, q, events.TopicOrderAccepted, "ORD-1", events.OrderAccepted{OrderID: "ORD-1", Subtotal: "20.00"})
		return err
	}))
	stored := m.Events()
	require.Len(t, stored, 1)
	require.Equal(t, emitted.ID, stored[0].ID)
	require.Equal(t, "ORD-1", stored[0].AggregateID)

	var decoded events.OrderAccepted
	require.NoError(t, json.Unmarshal(stored[0].Payload, &decoded))
	require.Equal(t, "20.00", decoded.Subtotal)
}

func TestEmitRolledBackWithTransaction(t *testing.T) {
	m := memdb.New()
	bus := &events.Bus{}
	ctx := context.Background()
	boom := errors.New("boom")

	err := m.InTx(ctx, func(q gen.Querier) error {
		if _, err := bus.Emit(ctx, q, events.TopicOrderAccepted, "ORD-1", nil); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Empty(t, m.Events())
}

func TestEmitValidatesInput(t *testing.T) {
	m := memdb.New()
	bus := &events.Bus{}
	ctx := context.Background()
	err := m.InTx(ctx, func(q gen.Querier) error {
		_, err := bus.Emit(ctx, q, " ", "ORD-1", nil)
		return err
	})
	require.Error(t, err)
	err = m.InTx(ctx, func(q gen.Querier) error {
		_, err := bus.Emit(ctx, q, events.TopicOrderAccepted, "ORD-1", []byte("{not json"))
		return err
	})
	require.Error(t, err)
}

func TestDispatchJoinsNotifierErrors(t *testing.T) {
	capture := &captureNotifier{}
	failing := events.NotifierFunc(func(context.Context, gen.DomainEvent) error { return errors.New("queue down") })
	bus := &events.Bus{Notifiers: []events.Notifier{failing, capture, nil}}

	err := bus.Dispatch(context.Background(), gen.DomainEvent{ID: 1, Topic: events.TopicOrderAccepted})
	require.ErrorContains(t, err, "queue down")
	require.Len(t, capture.events, 1)

	var nilBus *events.Bus
	require.NoError(t, nilBus.Dispatch(context.Background(), gen.DomainEvent{}))
}
