package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
)

var fastRetry = RetryPolicy{Attempts: 3, BaseDelay: time.Millisecond}

func nopLogger() logger.Logger {
	return logger.NewWithWriter(&config.Config{LogLevel: "error"}, io.Discard)
}

func countingHandler(calls *int, failUntil int, failWith error) Handler {
	return func(_ context.Context, _ *message.Message) error {
		*calls++
		if *calls < failUntil {
			return failWith
		}
		return nil
	}
}

func TestRetryWithBackoff(t *testing.T) {
	transient := errors.New("transient")
	malformed := fmt.Errorf("%w: bad json", ErrMalformedPayload)

	tests := []struct {
		name      string
		failUntil int
		failWith  error
		wantCalls int
		wantErr   error
	}{
		{"success on first attempt", 1, transient, 1, nil},
		{"success after retries", 3, transient, 3, nil},
		{"exhausts attempts", 99, transient, 3, transient},
		{"malformed payload is not retried", 99, malformed, 1, ErrMalformedPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := retryWithBackoff(context.Background(), message.NewMessage("id", nil),
				countingHandler(&calls, tt.failUntil, tt.failWith), fastRetry, nopLogger())

			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := retryWithBackoff(ctx, message.NewMessage("id", nil),
		countingHandler(&calls, 99, errors.New("down")), RetryPolicy{Attempts: 3, BaseDelay: time.Second}, nopLogger())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestStartForwarder_RequiresOutbox(t *testing.T) {
	bus := &EventBus{outbox: false}
	if err := bus.StartForwarder(context.Background()); err == nil {
		t.Fatal("expected error for a bus without outbox")
	}
}

func TestTracePropagation(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "add-item")
	defer span.End()

	msg := message.NewMessage("id", nil)
	injectTrace(ctx, []*message.Message{msg})
	got := trace.SpanFromContext(extractTrace(context.Background(), msg)).SpanContext()

	if !got.IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if got.TraceID() != span.SpanContext().TraceID() {
		t.Errorf("trace ID = %s, want %s", got.TraceID(), span.SpanContext().TraceID())
	}
}
