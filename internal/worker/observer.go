package worker

import (
	"context"
	"log/slog"
	"time"

	"timelog/internal/amqp"
	"timelog/internal/log"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second

	// healthyRun is the stream uptime after which a drop is treated as a
	// fresh incident rather than a continuation of earlier flakiness.
	healthyRun = time.Minute
)

// Observer keeps a store-update consumer running for the lifetime of the
// process, retrying with backoff when the broker stream drops.
type Observer struct {
	client  *amqp.Client
	handler func(*amqp.StoreUpdateMessage) error
}

func NewObserver(client *amqp.Client, handler func(*amqp.StoreUpdateMessage) error) *Observer {
	return &Observer{
		client:  client,
		handler: handler,
	}
}

// Run blocks until ctx is cancelled. Consume errors other than cancellation
// trigger a retry; the shared client keeps its origin id, so this process's
// own writes stay filtered out across retries.
func (o *Observer) Run(ctx context.Context) error {
	var backoff time.Duration

	for {
		start := time.Now()
		err := o.client.ConsumeStoreUpdates(ctx, o.handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		backoff = nextBackoff(backoff, time.Since(start))
		slog.WarnContext(ctx, "Store update stream ended, retrying",
			log.FieldComponent, log.ComponentWorker,
			log.FieldError, err,
			"backoff", backoff)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// nextBackoff picks the delay before the next consume attempt. The first
// drop, and any drop after a healthy stream uptime, restarts the ladder;
// consecutive quick drops double the delay up to maxBackoff.
func nextBackoff(previous, streamUptime time.Duration) time.Duration {
	if previous == 0 || streamUptime >= healthyRun {
		return initialBackoff
	}
	next := previous * 2
	if next > maxBackoff {
		next = maxBackoff
	}
	return next
}
