package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/noah-isme/toko-checkout/internal/common"
	"github.com/noah-isme/toko-checkout/internal/obs"
)

const sentGuardTTL = 7 * 24 * time.Hour

// ConfirmationHandler delivers order confirmation emails for
// TypeOrderConfirmation tasks.
type ConfirmationHandler struct {
	Mail    common.EmailSender
	Guard   SendGuard
	Metrics *obs.DomainMetrics
	Logger  zerolog.Logger
}

// ProcessTask implements asynq.Handler. Malformed payloads are not retried.
func (h ConfirmationHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var p OrderConfirmation
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		h.Metrics.ObserveConfirmation("send", "invalid")
		return fmt.Errorf("decode confirmation payload: %v: %w", err, asynq.SkipRetry)
	}
	to := strings.TrimSpace(p.Email)
	if p.OrderID == "" || to == "" {
		h.Metrics.ObserveConfirmation("send", "invalid")
		return fmt.Errorf("confirmation for %q has no recipient: %w", p.OrderID, asynq.SkipRetry)
	}
	if h.Mail == nil {
		return fmt.Errorf("confirmation mailer not configured")
	}

	key := "notify:sent:" + p.OrderID
	if h.Guard != nil {
		ok, err := h.Guard.Acquire(ctx, key, sentGuardTTL)
		if err != nil {
			h.Metrics.ObserveConfirmation("send", "error")
			return fmt.Errorf("claim confirmation %s: %w", p.OrderID, err)
		}
		if !ok {
			h.Metrics.ObserveConfirmation("send", "duplicate")
			return nil
		}
	}

	if err := h.Mail.Send(to, confirmationSubject(p), confirmationBody(p)); err != nil {
		if h.Guard != nil {
			if rerr := h.Guard.Release(ctx, key); rerr != nil {
				h.Logger.Warn().Err(rerr).Str("order_id", p.OrderID).Msg("release confirmation claim")
			}
		}
		h.Metrics.ObserveConfirmation("send", "error")
		return fmt.Errorf("send confirmation %s: %w", p.OrderID, err)
	}

	h.Metrics.ObserveConfirmation("send", "ok")
	h.Logger.Info().
		Str("order_id", p.OrderID).
		Str("user_id", p.UserID).
		Str("subtotal", p.Subtotal).
		Str("currency", p.Currency).
		Msg("order confirmation sent")
	return nil
}

func confirmationSubject(p OrderConfirmation) string {
	return "Order " + p.OrderID + " received"
}

func confirmationBody(p OrderConfirmation) string {
	var b strings.Builder
	b.WriteString("<p>Thanks for your order.</p>")
	fmt.Fprintf(&b, "<p>Order <strong>%s</strong> has been accepted.</p>", html.EscapeString(p.OrderID))
	if p.Subtotal != "" {
		fmt.Fprintf(&b, "<p>Subtotal: %s %s</p>", html.EscapeString(p.Subtotal), html.EscapeString(p.Currency))
	}
	return b.String()
}
