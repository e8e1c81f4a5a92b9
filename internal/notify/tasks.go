// Package notify turns committed order events into background jobs and runs
// those jobs in the worker.
package notify

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/hibiken/asynq"
)

// TypeOrderConfirmation is the asynq task type of order confirmations.
const TypeOrderConfirmation = "order:confirmation"

const (
	defaultQueue    = "default"
	defaultMaxRetry = 8
	taskTimeout     = 30 * time.Second
)

// OrderConfirmation is the payload of a TypeOrderConfirmation task.
type OrderConfirmation struct {
	OrderID  string `json:"orderId"`
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Subtotal string `json:"subtotal"`
	Currency string `json:"currency"`
}

// NewOrderConfirmationTask builds the task for p. The task id is derived
// from the order id so one order is enqueued at most once.
func NewOrderConfirmationTask(p OrderConfirmation, opts ...asynq.Option) (*asynq.Task, error) {
	if strings.TrimSpace(p.OrderID) == "" {
		return nil, errors.New("notify: order id is required")
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	base := []asynq.Option{
		asynq.TaskID(confirmationTaskID(p.OrderID)),
		asynq.Timeout(taskTimeout),
	}
	return asynq.NewTask(TypeOrderConfirmation, raw, append(base, opts...)...), nil
}

func confirmationTaskID(orderID string) string {
	return "order-confirmation:" + orderID
}
