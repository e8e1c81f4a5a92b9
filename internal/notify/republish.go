package notify

import (
	"context"
	"errors"

	"github.com/noah-isme/toko-checkout/internal/db"
	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/events"
)

// Republish hands up to limit stored order.accepted events to n again. It
// recovers confirmations whose enqueue failed after commit; task ids keep the
// replay from duplicating jobs that already exist.
func Republish(ctx context.Context, store db.Store, n events.Notifier, limit int32) (int, error) {
	var evs []gen.DomainEvent
	err := store.Read(ctx, func(q gen.Querier) error {
		var err error
		evs, err = q.ListDomainEventsByTopic(ctx, gen.ListDomainEventsByTopicParams{
			Topic: events.TopicOrderAccepted,
			Limit: limit,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	var errs []error
	sent := 0
	for _, ev := range evs {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if err := n.Notify(ctx, ev); err != nil {
			errs = append(errs, err)
			continue
		}
		sent++
	}
	return sent, errors.Join(errs...)
}
