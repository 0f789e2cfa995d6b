package analytics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teruzahostel/minimarket-backend/pkg/db/models"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
)

type recordingWriter struct {
	mu     sync.Mutex
	events []models.AnalyticsEvent
	gate   chan struct{}
}

func (w *recordingWriter) Create(_ context.Context, event *models.AnalyticsEvent) error {
	if w.gate != nil {
		<-w.gate
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, *event)
	return nil
}

func (w *recordingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.events)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{Level: zerolog.ErrorLevel})
}

func TestDispatcherWritesQueuedEvents(t *testing.T) {
	writer := &recordingWriter{}
	dispatcher, err := NewDispatcher(DispatcherParams{Writer: writer, Logger: testLogger(), Capacity: 8})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = dispatcher.Run(ctx)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		ok := dispatcher.Enqueue(context.Background(), models.AnalyticsEvent{
			EventType:   enums.AnalyticsEventView,
			ProductName: "Água Mineral",
		})
		assert.True(t, ok)
	}

	require.Eventually(t, func() bool { return writer.count() == 3 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	// The gate keeps the worker stuck on the first write so the queue
	// fills up behind it.
	writer := &recordingWriter{gate: make(chan struct{})}
	dispatcher, err := NewDispatcher(DispatcherParams{Writer: writer, Logger: testLogger(), Capacity: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = dispatcher.Run(ctx)
		close(done)
	}()

	first := dispatcher.Enqueue(context.Background(), models.AnalyticsEvent{EventType: enums.AnalyticsEventView})
	assert.True(t, first)

	// Wait until the worker picks up the first event, then fill the
	// single buffered slot and overflow it.
	require.Eventually(t, func() bool {
		return dispatcher.Enqueue(context.Background(), models.AnalyticsEvent{EventType: enums.AnalyticsEventView})
	}, time.Second, time.Millisecond)

	dropped := dispatcher.Enqueue(context.Background(), models.AnalyticsEvent{EventType: enums.AnalyticsEventView})
	assert.False(t, dropped)

	close(writer.gate)
	cancel()
	<-done
	assert.Equal(t, 2, writer.count())
}

func TestDispatcherFlushesOnShutdown(t *testing.T) {
	writer := &recordingWriter{}
	dispatcher, err := NewDispatcher(DispatcherParams{Writer: writer, Logger: testLogger(), Capacity: 8})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.True(t, dispatcher.Enqueue(context.Background(), models.AnalyticsEvent{EventType: enums.AnalyticsEventAddToCart}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = dispatcher.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4, writer.count())

	// After shutdown new events are refused.
	assert.False(t, dispatcher.Enqueue(context.Background(), models.AnalyticsEvent{EventType: enums.AnalyticsEventView}))
}
