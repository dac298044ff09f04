package messaging

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"
)

const dlqPublishTimeout = 5 * time.Second

type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
	}
}

var ErrMaxRetriesExceeded = errors.New("max retries exceeded")

// PermanentError marks a failure that no retry can fix, such as a malformed message.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return "permanent: " + e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

func IsPermanent(err error) bool {
	var target *PermanentError
	return errors.As(err, &target)
}

// WithRetry retries with exponential backoff and jitter. Permanent errors are returned at once.
func WithRetry(handler MessageHandler, cfg RetryConfig) MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		backoff := cfg.InitialBackoff

		var lastErr error
		for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
			lastErr = handler(ctx, key, value)
			if lastErr == nil || IsPermanent(lastErr) {
				return lastErr
			}

			if attempt == cfg.MaxAttempts-1 {
				break
			}

			sleep := backoff + time.Duration(rand.IntN(100))*time.Millisecond
			if sleep > cfg.MaxBackoff {
				sleep = cfg.MaxBackoff
			}
			slog.WarnContext(ctx, "Message handling failed, retrying",
				"key", string(key), "attempt", attempt+1, "backoff", sleep, "error", lastErr)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(sleep):
			}
			backoff *= 2
		}

		return errors.Join(ErrMaxRetriesExceeded, lastErr)
	}
}

type DLQPublisher interface {
	PublishToDLQ(ctx context.Context, key, value []byte, err error) error
}

// WithDLQ parks failed messages in the dead letter queue and reports success,
// so the consumer commits the offset and moves on.
func WithDLQ(handler MessageHandler, dlq DLQPublisher) MessageHandler {
	return func(ctx context.Context, key, value []byte) error {
		err := handler(ctx, key, value)
		if err == nil {
			return nil
		}

		// the consumer context may already be canceled on shutdown
		dlqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dlqPublishTimeout)
		defer cancel()

		if dlqErr := dlq.PublishToDLQ(dlqCtx, key, value, err); dlqErr != nil {
			// keep the offset uncommitted so the message is not lost
			return errors.Join(err, dlqErr)
		}
		return nil
	}
}
