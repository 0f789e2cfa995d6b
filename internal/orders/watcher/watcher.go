// Package watcher polls for pending orders on a fixed interval so
// staff notice new checkouts without refreshing the back office.
package watcher

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/teruzahostel/minimarket-backend/pkg/logger"
	"github.com/teruzahostel/minimarket-backend/pkg/metrics"
)

const pollName = "pending_orders"

type pendingReader interface {
	ListPendingIDs(ctx context.Context) ([]uuid.UUID, error)
}

// Watcher runs the pending-order poll loop. A tick is skipped while the
// previous poll is still in flight so slow polls never overlap.
type Watcher struct {
	logg     *logger.Logger
	repo     pendingReader
	metrics  *metrics.WatcherMetrics
	interval time.Duration
	timeout  time.Duration

	inFlight atomic.Bool
	seen     map[uuid.UUID]struct{}
}

// Params bundles the dependencies required to build a watcher.
type Params struct {
	Logger   *logger.Logger
	Repo     pendingReader
	Metrics  *metrics.WatcherMetrics
	Interval time.Duration
	Timeout  time.Duration
}

// New constructs a watcher with the provided dependencies.
func New(params Params) (*Watcher, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if params.Interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive")
	}
	timeout := params.Timeout
	if timeout <= 0 || timeout > params.Interval {
		timeout = params.Interval
	}
	return &Watcher{
		logg:     params.Logger,
		repo:     params.Repo,
		metrics:  params.Metrics,
		interval: params.Interval,
		timeout:  timeout,
		seen:     make(map[uuid.UUID]struct{}),
	}, nil
}

// Run executes the poll loop until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	w.Tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logg.Info(ctx, "order watcher context canceled")
			return ctx.Err()
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick runs one poll unless the previous one has not resolved yet, in
// which case the tick is dropped and counted.
func (w *Watcher) Tick(ctx context.Context) {
	if !w.inFlight.CompareAndSwap(false, true) {
		w.metrics.IncSkipped(pollName)
		w.logg.Warn(ctx, "order poll still in flight, skipping tick")
		return
	}
	defer w.inFlight.Store(false)

	pollCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	ids, err := w.repo.ListPendingIDs(pollCtx)
	w.metrics.ObserveDuration(pollName, time.Since(start))
	if err != nil {
		w.metrics.IncFailure(pollName)
		w.logg.Error(ctx, "pending order poll failed", err)
		return
	}

	w.metrics.IncSuccess(pollName)
	w.metrics.SetPendingOrders(len(ids))
	w.announceNew(ctx, ids)
}

// announceNew logs orders not seen by a previous poll and forgets
// orders that left the pending state.
func (w *Watcher) announceNew(ctx context.Context, ids []uuid.UUID) {
	current := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		current[id] = struct{}{}
		if _, ok := w.seen[id]; !ok {
			w.logg.Info(w.logg.WithField(ctx, "order_id", id.String()), "new pending order")
		}
	}
	w.seen = current
}
