package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/components/forwarder"
)

// StartForwarder runs the daemon that moves committed outbox messages to
// their topics. It returns once the daemon is running. Only valid on a bus
// created with Outbox, and only once.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	if !q.outbox {
		return errors.New("events: StartForwarder requires an outbox bus")
	}
	if q.fwd != nil {
		return errors.New("events: forwarder already started")
	}

	wlog := newLogAdapter(q.log)
	queue, err := newSQLSubscriber(q.db, "wardrobe-outbox-forwarder", wlog)
	if err != nil {
		return err
	}
	target, err := newSQLPublisher(q.db, true, wlog)
	if err != nil {
		_ = queue.Close()
		return err
	}

	fwd, err := forwarder.NewForwarder(queue, target, wlog, forwarder.Config{
		ForwarderTopic: forwarderTopic,
	})
	if err != nil {
		_ = target.Close()
		_ = queue.Close()
		return fmt.Errorf("events: create forwarder: %w", err)
	}
	q.fwd = fwd

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.log.InfoContext(ctx, "events: forwarder started", "queue", forwarderTopic)
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "events: forwarder stopped with error", "error", err)
			return
		}
		q.log.InfoContext(ctx, "events: forwarder stopped")
	}()

	select {
	case <-fwd.Running():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: waiting for forwarder: %w", ctx.Err())
	}
}
