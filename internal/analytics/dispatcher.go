package analytics

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
)

// Dispatcher writes tracking events to the database off the request
// path. The queue is bounded and retry-less: when it is full the event
// is dropped with a warning. Losing tracking data is acceptable,
// slowing a guest request is not.
type Dispatcher struct {
	queue  chan models.AnalyticsEvent
	writer eventWriter
	logg   *logger.Logger

	closeOnce sync.Once
	done      chan struct{}
}

type eventWriter interface {
	Create(ctx context.Context, event *models.AnalyticsEvent) error
}

// DispatcherParams bundles the dependencies required to build a dispatcher.
type DispatcherParams struct {
	Writer   eventWriter
	Logger   *logger.Logger
	Capacity int
}

// NewDispatcher constructs a dispatcher with the provided dependencies.
func NewDispatcher(params DispatcherParams) (*Dispatcher, error) {
	if params.Writer == nil {
		return nil, fmt.Errorf("event writer is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if params.Capacity <= 0 {
		return nil, fmt.Errorf("queue capacity must be positive")
	}
	return &Dispatcher{
		queue:  make(chan models.AnalyticsEvent, params.Capacity),
		writer: params.Writer,
		logg:   params.Logger,
		done:   make(chan struct{}),
	}, nil
}

// Run drains the queue until the context is canceled, then flushes
// whatever is already buffered before returning.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer d.closeOnce.Do(func() { close(d.done) })

	for {
		select {
		case <-ctx.Done():
			d.flush()
			return ctx.Err()
		case event := <-d.queue:
			if err := d.write(ctx, event); err != nil {
				d.logg.Error(ctx, "analytics event write failed", err)
			}
		}
	}
}

// Enqueue hands the event to the background writer without blocking.
// It reports whether the event was accepted.
func (d *Dispatcher) Enqueue(ctx context.Context, event models.AnalyticsEvent) bool {
	select {
	case <-d.done:
		return false
	default:
	}

	select {
	case d.queue <- event:
		return true
	default:
		d.logg.Warn(ctx, "analytics queue full, event dropped")
		return false
	}
}

func (d *Dispatcher) flush() {
	ctx := context.Background()
	var flushErr error
	for {
		select {
		case event := <-d.queue:
			flushErr = multierr.Append(flushErr, d.write(ctx, event))
		default:
			if flushErr != nil {
				d.logg.Error(ctx, "analytics flush incomplete", flushErr)
			}
			return
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, event models.AnalyticsEvent) error {
	writeCtx := context.WithoutCancel(ctx)
	if err := d.writer.Create(writeCtx, &event); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
