package notify

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// LogMailer is an EmailSender that writes each message to the log instead of
// delivering it.
type LogMailer struct {
	Logger zerolog.Logger
}

// Send implements common.EmailSender.
func (m LogMailer) Send(to, subject, html string) error {
	m.Logger.Info().
		Str("to", to).
		Str("subject", subject).
		Int("body_bytes", len(html)).
		Msg("order confirmation")
	return nil
}

// NewServeMux routes confirmation tasks to h.
func NewServeMux(h ConfirmationHandler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(TypeOrderConfirmation, h)
	return mux
}

// asynqLogger adapts zerolog to asynq.Logger.
type asynqLogger struct {
	l zerolog.Logger
}

// NewAsynqLogger returns an asynq.Logger writing through l.
func NewAsynqLogger(l zerolog.Logger) asynq.Logger {
	return asynqLogger{l: l}
}

func (a asynqLogger) Debug(args ...any) { a.l.Debug().Msg(fmt.Sprint(args...)) }
func (a asynqLogger) Info(args ...any)  { a.l.Info().Msg(fmt.Sprint(args...)) }
func (a asynqLogger) Warn(args ...any)  { a.l.Warn().Msg(fmt.Sprint(args...)) }
func (a asynqLogger) Error(args ...any) { a.l.Error().Msg(fmt.Sprint(args...)) }
func (a asynqLogger) Fatal(args ...any) { a.l.Fatal().Msg(fmt.Sprint(args...)) }

// ErrorHandler logs tasks that failed an attempt.
func ErrorHandler(l zerolog.Logger) asynq.ErrorHandler {
	return asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)
		l.Warn().Err(err).
			Str("task_type", task.Type()).
			Int("retry", retried).
			Int("max_retry", maxRetry).
			Msg("task failed")
	})
}
