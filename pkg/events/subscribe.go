package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"

	"github.com/wardrobecapital/wardrobe/pkg/logger"
)

// Handler processes one message. ctx carries the publisher's trace.
type Handler func(ctx context.Context, msg *message.Message) error

// Subscribe handles messages from topic in a background goroutine until ctx
// is cancelled or the bus is closed.
//
//   - nil: Ack
//   - ErrMalformedPayload: Ack without retry, logged
//   - other errors: retried per the bus RetryPolicy, then Nack and sent to
//     the returned channel
//
// The channel is buffered (100) and must be drained; errors are dropped
// with a log line when it is full.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler Handler) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}

	errCh := make(chan error, 100)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)

		for msg := range ch {
			msgCtx := extractTrace(ctx, msg)
			err := retryWithBackoff(msgCtx, msg, handler, q.retry, q.log)
			switch {
			case err == nil:
				q.count(msgCtx, topic, "ok")
				msg.Ack()
			case errors.Is(err, ErrMalformedPayload):
				q.count(msgCtx, topic, "dropped")
				q.log.WarnContext(msgCtx, "events: dropping malformed message",
					"topic", topic, "message_uuid", msg.UUID, "error", err)
				msg.Ack()
			default:
				q.count(msgCtx, topic, "failed")
				msg.Nack()
				select {
				case errCh <- err:
				default:
					q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
						"error", err, "topic", topic)
				}
			}
		}
	}()

	return errCh, nil
}

func (q *EventBus) count(ctx context.Context, topic, outcome string) {
	if q.handled == nil {
		return
	}
	q.handled.Add(ctx, 1, metric.WithAttributes(
		attribute.String("topic", topic),
		attribute.String("outcome", outcome),
	))
}

// retryWithBackoff calls handler up to policy.Attempts times, doubling the
// delay after each failure. Malformed payloads are not retried.
func retryWithBackoff(ctx context.Context, msg *message.Message, handler Handler, policy RetryPolicy, log logger.Logger) error {
	delay := policy.BaseDelay
	var err error
	for attempt := 1; attempt <= policy.Attempts; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if errors.Is(err, ErrMalformedPayload) {
			return err
		}
		if attempt == policy.Attempts {
			break
		}
		log.WarnContext(ctx, "events: handler failed, retrying",
			"message_uuid", msg.UUID,
			"attempt", attempt,
			"max_attempts", policy.Attempts,
			"next_delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("events: handler failed after %d attempts: %w", policy.Attempts, err)
}

func injectTrace(ctx context.Context, msgs []*message.Message) {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
}

func extractTrace(ctx context.Context, msg *message.Message) context.Context {
	carrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		carrier[k] = v
	}
	return otel.GetTextMapPropagator().Extract(ctx, carrier)
}
