package synchronizer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"atelier/internal/core/application/synchronizer"
	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/pkg/clock"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

type fakeStore struct {
	mu       sync.Mutex
	stored   *atelier.Atelier
	writes   []*atelier.Atelier
	failNext int
	fetchErr error
	// entered receives a value when Replace starts, block is then waited on
	entered chan struct{}
	block   chan struct{}
}

func (f *fakeStore) Fetch(_ context.Context, atelierID string) (*atelier.Atelier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if f.stored == nil {
		return nil, errs.NewObjectNotFoundError("atelierId", atelierID)
	}
	return f.stored.Clone(), nil
}

func (f *fakeStore) Replace(_ context.Context, a *atelier.Atelier) error {
	if f.entered != nil {
		select {
		case f.entered <- struct{}{}:
		default:
		}
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, a)
	if f.failNext > 0 {
		f.failNext--
		return errors.New("backend unavailable")
	}
	f.stored = a
	return nil
}

func (f *fakeStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

type loaderFunc func(ctx context.Context, a *atelier.Atelier) error

func (f loaderFunc) Load(ctx context.Context, a *atelier.Atelier) error { return f(ctx, a) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAtelier(t *testing.T, name string) *atelier.Atelier {
	t.Helper()
	a, err := atelier.NewAtelier("atelier-1", atelier.NewProfile(name, "1234", atelier.Subscription{}))
	require.NoError(t, err)
	return a
}

func newSynchronizer(store *fakeStore, c *clock.Manual) *synchronizer.Synchronizer {
	return synchronizer.New(store, c, discardLogger())
}

func TestSynchronizer_DebounceCoalescesMutations(t *testing.T) {
	ctx := t.Context()
	c := clock.NewManual(start)
	store := &fakeStore{}
	s := newSynchronizer(store, c)

	for i := range 5 {
		s.TrackSnapshot(ctx, newAtelier(t, string(rune('A'+i))))
		c.Advance(200 * time.Millisecond)
		flushed, err := s.FlushIfDue(ctx)
		require.NoError(t, err)
		assert.False(t, flushed, "no flush inside the quiet period")
	}

	c.Advance(800 * time.Millisecond)
	flushed, err := s.FlushIfDue(ctx)
	require.NoError(t, err)
	assert.True(t, flushed)

	require.Equal(t, 1, store.writeCount())
	assert.Equal(t, "E", store.stored.Profile().Name())
	assert.False(t, s.Dirty())

	flushed, err = s.FlushIfDue(ctx)
	require.NoError(t, err)
	assert.False(t, flushed, "nothing left to write")
}

func TestSynchronizer_NotDirtyNeverFlushes(t *testing.T) {
	c := clock.NewManual(start)
	store := &fakeStore{}
	s := newSynchronizer(store, c)

	c.Advance(time.Hour)
	flushed, err := s.FlushIfDue(t.Context())
	require.NoError(t, err)
	assert.False(t, flushed)
	require.NoError(t, s.Flush(t.Context()))
	assert.Zero(t, store.writeCount())
}

func TestSynchronizer_FailureStaysDirtyAndBacksOff(t *testing.T) {
	ctx := t.Context()
	c := clock.NewManual(start)
	store := &fakeStore{failNext: 1}
	s := newSynchronizer(store, c)

	s.TrackSnapshot(ctx, newAtelier(t, "A"))
	c.Advance(time.Second)

	flushed, err := s.FlushIfDue(ctx)
	assert.True(t, flushed)
	require.Error(t, err)
	assert.True(t, s.Dirty())

	flushed, err = s.FlushIfDue(ctx)
	require.NoError(t, err)
	assert.False(t, flushed, "retry waits for the backoff delay")

	c.Advance(2 * time.Second)
	flushed, err = s.FlushIfDue(ctx)
	require.NoError(t, err)
	assert.True(t, flushed)
	assert.False(t, s.Dirty())
	assert.Equal(t, 2, store.writeCount())
}

func TestSynchronizer_MutationDuringFlushKeepsDirty(t *testing.T) {
	ctx := t.Context()
	c := clock.NewManual(start)
	store := &fakeStore{entered: make(chan struct{}, 1), block: make(chan struct{})}
	s := newSynchronizer(store, c)

	s.TrackSnapshot(ctx, newAtelier(t, "A"))
	c.Advance(time.Second)

	done := make(chan error, 1)
	go func() {
		_, err := s.FlushIfDue(ctx)
		done <- err
	}()

	<-store.entered
	flushed, err := s.FlushIfDue(ctx)
	require.NoError(t, err)
	assert.False(t, flushed, "one write at a time")

	s.TrackSnapshot(ctx, newAtelier(t, "B"))
	close(store.block)
	require.NoError(t, <-done)

	assert.True(t, s.Dirty(), "the newer snapshot is still pending")
	require.NoError(t, s.Flush(ctx))
	assert.False(t, s.Dirty())
	assert.Equal(t, "B", store.stored.Profile().Name())
}

func TestSynchronizer_FlushIgnoresDebounce(t *testing.T) {
	ctx := t.Context()
	c := clock.NewManual(start)
	store := &fakeStore{}
	s := newSynchronizer(store, c)

	s.TrackSnapshot(ctx, newAtelier(t, "A"))
	require.NoError(t, s.Flush(ctx))
	assert.Equal(t, 1, store.writeCount())
}

func TestSynchronizer_WithDebounce(t *testing.T) {
	ctx := t.Context()
	c := clock.NewManual(start)
	store := &fakeStore{}
	s := synchronizer.New(store, c, discardLogger(), synchronizer.WithDebounce(5*time.Second))

	s.TrackSnapshot(ctx, newAtelier(t, "A"))
	c.Advance(time.Second)
	flushed, _ := s.FlushIfDue(ctx)
	assert.False(t, flushed)

	c.Advance(4 * time.Second)
	flushed, err := s.FlushIfDue(ctx)
	require.NoError(t, err)
	assert.True(t, flushed)
}

func TestSynchronizer_Hydrate(t *testing.T) {
	ctx := t.Context()

	t.Run("existing", func(t *testing.T) {
		store := &fakeStore{stored: newAtelier(t, "Couture Awa")}
		s := newSynchronizer(store, clock.NewManual(start))

		var loaded *atelier.Atelier
		err := s.Hydrate(ctx, loaderFunc(func(_ context.Context, a *atelier.Atelier) error {
			loaded = a
			return nil
		}), "atelier-1")
		require.NoError(t, err)
		assert.Equal(t, "Couture Awa", loaded.Profile().Name())
		assert.False(t, s.Dirty())
	})

	t.Run("missing seeds empty", func(t *testing.T) {
		s := newSynchronizer(&fakeStore{}, clock.NewManual(start))

		var loaded *atelier.Atelier
		err := s.Hydrate(ctx, loaderFunc(func(_ context.Context, a *atelier.Atelier) error {
			loaded = a
			return nil
		}), "atelier-7")
		require.NoError(t, err)
		assert.Equal(t, "atelier-7", loaded.ID())
		assert.Empty(t, loaded.Orders())
	})

	t.Run("store error", func(t *testing.T) {
		s := newSynchronizer(&fakeStore{fetchErr: errors.New("timeout")}, clock.NewManual(start))
		err := s.Hydrate(ctx, loaderFunc(func(context.Context, *atelier.Atelier) error {
			t.Fatal("loader must not be called")
			return nil
		}), "atelier-1")
		require.Error(t, err)
	})
}
