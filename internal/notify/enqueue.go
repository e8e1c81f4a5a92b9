package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-checkout/internal/db/gen"
	"github.com/noah-isme/toko-checkout/internal/events"
	"github.com/noah-isme/toko-checkout/internal/obs"
)

// TaskClient enqueues asynq tasks. *asynq.Client implements it.
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer turns order.accepted events into confirmation tasks. It
// implements events.Notifier.
type Enqueuer struct {
	Client   TaskClient
	Queue    string
	MaxRetry int
	Metrics  *obs.DomainMetrics
	Logger   zerolog.Logger
}

var _ events.Notifier = (*Enqueuer)(nil)

// Notify enqueues a confirmation for event. Other topics are ignored. A task
// that was already enqueued for the same order counts as success.
func (e *Enqueuer) Notify(ctx context.Context, event gen.DomainEvent) error {
	if event.Topic != events.TopicOrderAccepted {
		return nil
	}
	if e == nil || e.Client == nil {
		return errors.New("notify: task client not configured")
	}
	var accepted events.OrderAccepted
	if err := json.Unmarshal(event.Payload, &accepted); err != nil {
		e.Metrics.ObserveConfirmation("enqueue", "invalid")
		return fmt.Errorf("notify: decode %s payload: %w", event.Topic, err)
	}
	task, err := NewOrderConfirmationTask(OrderConfirmation{
		OrderID:  accepted.OrderID,
		UserID:   accepted.UserID,
		Email:    accepted.Email,
		Subtotal: accepted.Subtotal,
		Currency: accepted.Currency,
	}, asynq.Queue(e.queue()), asynq.MaxRetry(e.maxRetry()))
	if err != nil {
		e.Metrics.ObserveConfirmation("enqueue", "invalid")
		return err
	}

	info, err := e.Client.EnqueueContext(ctx, task)
	switch {
	case errors.Is(err, asynq.ErrTaskIDConflict), errors.Is(err, asynq.ErrDuplicateTask):
		e.Metrics.ObserveConfirmation("enqueue", "duplicate")
		return nil
	case err != nil:
		e.Metrics.ObserveConfirmation("enqueue", "error")
		return fmt.Errorf("notify: enqueue confirmation for %s: %w", accepted.OrderID, err)
	}
	e.Metrics.ObserveConfirmation("enqueue", "ok")
	e.Logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("order_id", accepted.OrderID).
		Msg("order confirmation enqueued")
	return nil
}

func (e *Enqueuer) queue() string {
	if e.Queue != "" {
		return e.Queue
	}
	return defaultQueue
}

func (e *Enqueuer) maxRetry() int {
	if e.MaxRetry > 0 {
		return e.MaxRetry
	}
	return defaultMaxRetry
}
