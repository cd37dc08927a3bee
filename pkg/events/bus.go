// Package events is the outbox and delivery layer between the wardrobe API
// and the worker, built on Watermill's PostgreSQL transport.
//
// The API writes domain events inside the same transaction as the item
// change (PublishTx). With Outbox enabled those writes land in an internal
// forwarder queue and a forwarder daemon moves them to their topics, so an
// event exists if and only if its change committed. The worker subscribes in
// a consumer group: each event is handled by one worker instance.
//
// Handlers must be idempotent. A failing handler is retried with exponential
// backoff; a payload that cannot be decoded is acknowledged and dropped.
// Trace context travels in message metadata.
package events

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/wardrobecapital/wardrobe/pkg/config"
	"github.com/wardrobecapital/wardrobe/pkg/logger"
)

const (
	shutdownTimeout = 30 * time.Second
	forwarderTopic  = "wardrobe_outbox"
)

// RetryPolicy bounds handler retries.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultRetryPolicy makes three attempts, waiting 1s then 2s.
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, BaseDelay: time.Second}

// Options configures New.
type Options struct {
	DatabaseURL string
	// ConsumerGroup shares delivery among subscribers with the same value.
	ConsumerGroup string
	// Outbox routes publishes through the forwarder queue. Call
	// StartForwarder to drain it.
	Outbox bool
	// Retry defaults to DefaultRetryPolicy.
	Retry RetryPolicy
}

// EventBus publishes and subscribes to domain events stored in PostgreSQL.
type EventBus struct {
	publisher  message.Publisher
	subscriber *watermillsql.Subscriber
	fwd        *forwarder.Forwarder
	db         *sql.DB
	log        logger.Logger
	wg         sync.WaitGroup
	outbox     bool
	retry      RetryPolicy
	handled    metric.Int64Counter
}

// NewEventBus returns the worker's bus: subscribe only, consumer group
// "<service>-worker".
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return New(Options{
		DatabaseURL:   cfg.DefinitionDatabaseURL,
		ConsumerGroup: cfg.ServiceName + "-worker",
	}, log)
}

// NewEventBusWithForwarder returns the API's bus, publishing through the
// outbox.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return New(Options{
		DatabaseURL:   cfg.DefinitionDatabaseURL,
		ConsumerGroup: cfg.ServiceName + "-worker",
		Outbox:        true,
	}, log)
}

// New opens its own connection pool to opts.DatabaseURL. Watermill creates
// its tables on first use.
func New(opts Options, log logger.Logger) (*EventBus, error) {
	if opts.Retry.Attempts <= 0 {
		opts.Retry = DefaultRetryPolicy
	}

	db, err := sql.Open("pgx", opts.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}

	wlog := newLogAdapter(log)
	pub, err := newSQLPublisher(db, true, wlog)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sub, err := newSQLSubscriber(db, opts.ConsumerGroup, wlog)
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, err
	}

	handled, err := otel.Meter("github.com/wardrobecapital/wardrobe/events").Int64Counter(
		"wardrobe.events.handled",
		metric.WithDescription("Delivered events by topic and outcome"),
	)
	if err != nil {
		log.Warn("events: handled counter unavailable", "error", err)
	}

	return &EventBus{
		publisher:  outboxed(pub, opts.Outbox),
		subscriber: sub,
		db:         db,
		log:        log,
		outbox:     opts.Outbox,
		retry:      opts.Retry,
		handled:    handled,
	}, nil
}

// newSQLPublisher writes through db, which is the pool or, for outbox
// writes, a transaction.
func newSQLPublisher(db watermillsql.ContextExecutor, initSchema bool, wlog *logAdapter) (*watermillsql.Publisher, error) {
	pub, err := watermillsql.NewPublisher(db, watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: initSchema,
	}, wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	return pub, nil
}

func newSQLSubscriber(db *sql.DB, group string, wlog *logAdapter) (*watermillsql.Subscriber, error) {
	sub, err := watermillsql.NewSubscriber(db, watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}, wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new subscriber for %q: %w", group, err)
	}
	return sub, nil
}

// outboxed wraps pub so messages are enveloped into the forwarder queue.
func outboxed(pub message.Publisher, outbox bool) message.Publisher {
	if !outbox {
		return pub
	}
	return forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: forwarderTopic})
}

// Publish sends msgs to topic outside any transaction.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	injectTrace(ctx, msgs)
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// PublishTx writes msgs to topic inside tx, so they are delivered only if
// tx commits. Schema initialisation is skipped; New has already done it.
func (q *EventBus) PublishTx(ctx context.Context, tx *sql.Tx, topic string, msgs ...*message.Message) error {
	pub, err := newSQLPublisher(tx, false, newLogAdapter(q.log))
	if err != nil {
		return err
	}
	injectTrace(ctx, msgs)
	if err := outboxed(pub, q.outbox).Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s in tx: %w", topic, err)
	}
	return nil
}

// Ping checks the bus's database connection.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops the subscriber and the forwarder, waits up to 30s for
// in-flight handlers, then closes the publisher and the database.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}
	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for in-flight handlers")
	}

	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	return q.db.Close()
}
