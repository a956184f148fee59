package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/application/mocks"
	"github.com/nhs-digital-gp-it-futures/order-form-sub000/internal/infrastructure/persistence/memory"
)

var sweepTime = time.Date(2021, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSweeper(remover *mocks.MockExpiredSessionRemover, batch int) *SessionSweeper {
	w := NewSessionSweeper(remover, time.Minute, batch, slog.New(slog.NewTextHandler(io.Discard, nil)))
	w.now = func() time.Time { return sweepTime }
	return w
}

func TestSessionSweeper_DrainsFullBatches(t *testing.T) {
	remover := mocks.NewMockExpiredSessionRemover(t)
	remover.EXPECT().DeleteExpired(mock.Anything, sweepTime, 10).Return(10, nil).Twice()
	remover.EXPECT().DeleteExpired(mock.Anything, sweepTime, 10).Return(3, nil).Once()

	deleted, err := newTestSweeper(remover, 10).Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(23), deleted)
}

func TestSessionSweeper_StopsAtBatchLimit(t *testing.T) {
	remover := mocks.NewMockExpiredSessionRemover(t)
	remover.EXPECT().DeleteExpired(mock.Anything, sweepTime, 1).Return(1, nil).Times(maxBatchesPerTick)

	deleted, err := newTestSweeper(remover, 1).Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(maxBatchesPerTick), deleted)
}

func TestSessionSweeper_ReturnsRemoverError(t *testing.T) {
	remover := mocks.NewMockExpiredSessionRemover(t)
	remover.EXPECT().DeleteExpired(mock.Anything, sweepTime, 10).Return(10, nil).Once()
	remover.EXPECT().DeleteExpired(mock.Anything, sweepTime, 10).Return(0, errors.New("connection reset")).Once()

	deleted, err := newTestSweeper(remover, 10).Sweep(context.Background())

	require.Error(t, err)
	assert.Equal(t, int64(10), deleted)
}

func TestSessionSweeper_RemovesExpiredMemorySessions(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore(time.Millisecond)
	require.NoError(t, store.Set(ctx, "sid-1", "k", []byte(`"v"`)))
	require.NoError(t, store.Set(ctx, "sid-2", "k", []byte(`"v"`)))
	time.Sleep(5 * time.Millisecond)

	w := NewSessionSweeper(store, time.Minute, 100, slog.New(slog.NewTextHandler(io.Discard, nil)))
	deleted, err := w.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestSessionSweeper_StartStopsOnCancel(t *testing.T) {
	remover := mocks.NewMockExpiredSessionRemover(t)
	remover.EXPECT().DeleteExpired(mock.Anything, mock.Anything, 10).Return(0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewSessionSweeper(remover, time.Hour, 10, slog.New(slog.NewTextHandler(io.Discard, nil))).Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
