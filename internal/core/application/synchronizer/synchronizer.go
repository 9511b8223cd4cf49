// Package synchronizer reconciles the in-memory ledger with the remote
// aggregate store.
//
// Every committed unit of work hands the synchronizer a snapshot. The
// synchronizer keeps only the latest one and writes it once no mutation
// arrived for the debounce period:
//
//	s := synchronizer.New(store, clock.NewSystem(), logger, synchronizer.WithDebounce(time.Second))
//	ledger := memory.NewLedger(s)
//	if err := s.Hydrate(ctx, ledger, atelierID); err != nil {
//	    return err
//	}
//	// a job calls s.FlushIfDue(ctx) every second
//	defer s.Flush(context.Background())
//
// A failed write is logged and retried with exponential backoff; the
// snapshot stays pending until a write succeeds.
package synchronizer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/clock"
	"atelier/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultDebounce = 1000 * time.Millisecond

	defaultRetryInitial = time.Second
	defaultRetryMax     = time.Minute
)

// Loader receives the hydrated aggregate.
type Loader interface {
	Load(ctx context.Context, a *atelier.Atelier) error
}

var _ ports.SnapshotTracker = (*Synchronizer)(nil)

type Option func(*Synchronizer)

// WithDebounce sets the quiet period. Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(s *Synchronizer) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithRetry sets the first and the largest delay between failed writes.
func WithRetry(initial, maxInterval time.Duration) Option {
	return func(s *Synchronizer) {
		s.retry.InitialInterval = initial
		s.retry.MaxInterval = maxInterval
	}
}

// Synchronizer is safe for concurrent use.
type Synchronizer struct {
	store    ports.AtelierStore
	clock    clock.Clock
	logger   *slog.Logger
	debounce time.Duration

	mu           sync.Mutex
	pending      *atelier.Atelier
	dirty        bool
	flushing     bool
	lastMutation time.Time
	nextAttempt  time.Time
	retry        *backoff.ExponentialBackOff
}

func New(store ports.AtelierStore, c clock.Clock, logger *slog.Logger, opts ...Option) *Synchronizer {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = defaultRetryInitial
	retry.MaxInterval = defaultRetryMax
	retry.MaxElapsedTime = 0
	retry.Clock = c

	s := &Synchronizer{
		store:    store,
		clock:    c,
		logger:   logger.With("component", "synchronizer"),
		debounce: DefaultDebounce,
		retry:    retry,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.retry.Reset()
	return s
}

// Hydrate fetches the aggregate and loads it. A missing atelier is seeded
// with an empty aggregate that is written on the first flush.
func (s *Synchronizer) Hydrate(ctx context.Context, loader Loader, atelierID string) error {
	a, err := s.store.Fetch(ctx, atelierID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		s.logger.InfoContext(ctx, "atelier not found in store, starting empty", "atelier_id", atelierID)
		a, err = atelier.NewAtelier(atelierID, atelier.NewProfile("", "", atelier.Subscription{}))
	}
	if err != nil {
		return err
	}
	if err = loader.Load(ctx, a); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "atelier hydrated",
		"atelier_id", a.ID(),
		"orders", len(a.Orders()),
		"workstations", len(a.Workstations()),
	)
	return nil
}

// TrackSnapshot records the latest committed state and marks the synchronizer dirty.
func (s *Synchronizer) TrackSnapshot(_ context.Context, snapshot *atelier.Atelier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = snapshot
	s.dirty = true
	s.lastMutation = s.clock.Now()
}

// Dirty reports whether a snapshot is waiting to be written.
func (s *Synchronizer) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// FlushIfDue writes the pending snapshot if the quiet period has elapsed
// and no retry delay is running. It reports whether a write was attempted.
func (s *Synchronizer) FlushIfDue(ctx context.Context) (bool, error) {
	snapshot, ok := s.claim(false)
	if !ok {
		return false, nil
	}
	return true, s.write(ctx, snapshot)
}

// Flush writes the pending snapshot now, ignoring the quiet period and the
// retry delay. It is meant for shutdown.
func (s *Synchronizer) Flush(ctx context.Context) error {
	snapshot, ok := s.claim(true)
	if !ok {
		return nil
	}
	return s.write(ctx, snapshot)
}

func (s *Synchronizer) claim(force bool) (*atelier.Atelier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty || s.flushing {
		return nil, false
	}
	now := s.clock.Now()
	if !force {
		if now.Sub(s.lastMutation) < s.debounce || now.Before(s.nextAttempt) {
			return nil, false
		}
	}
	s.flushing = true
	return s.pending, true
}

func (s *Synchronizer) write(ctx context.Context, snapshot *atelier.Atelier) error {
	err := s.store.Replace(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushing = false

	if err != nil {
		delay := s.retry.NextBackOff()
		s.nextAttempt = s.clock.Now().Add(delay)
		s.logger.ErrorContext(ctx, "flush failed, will retry",
			"atelier_id", snapshot.ID(),
			"retry_in", delay,
			"error", err,
		)
		return err
	}

	// a commit during the write left a newer snapshot pending
	if s.pending == snapshot {
		s.dirty = false
		s.pending = nil
	}
	s.retry.Reset()
	s.nextAttempt = time.Time{}
	s.logger.InfoContext(ctx, "atelier flushed", "atelier_id", snapshot.ID())
	return nil
}
