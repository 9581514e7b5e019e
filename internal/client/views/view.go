// Package views implements the public read-only screens: home, about and
// projects.
//
// Every View fetches its resource exactly once per mount and moves from
// Loading to one of Error, Absent or Loaded. Views never share data; two
// views of the same resource fetch independently. Unmounting cancels an
// in-flight request and a late result is dropped.
package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/logging"
)

type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusAbsent
	StatusLoaded
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusAbsent:
		return "absent"
	case StatusLoaded:
		return "loaded"
	default:
		return "loading"
	}
}

// Snapshot is what a view shows at a moment. Message is set for Error and
// Absent.
type Snapshot[T any] struct {
	Status  Status
	Data    T
	Message string
}

// fetchFunc returns the data and whether it is present.
type fetchFunc[T any] func(ctx context.Context) (T, bool, error)

type View[T any] struct {
	name      string
	fetch     fetchFunc[T]
	errorText string
	absentMsg string
	logger    logging.Logger

	once    sync.Once
	done    chan struct{}
	cancel  context.CancelFunc
	mu      sync.RWMutex
	snap    Snapshot[T]
	mounted bool
}

func newView[T any](name string, fetch fetchFunc[T], errorText, absentText string, logger logging.Logger) *View[T] {
	if logger == nil {
		logger = logging.Nop()
	}
	return &View[T]{
		name:      name,
		fetch:     fetch,
		errorText: errorText,
		absentMsg: absentText,
		logger:    logger.With("view", name),
		done:      make(chan struct{}),
	}
}

// Mount starts the view's single fetch in the background. Later calls do
// nothing.
func (v *View[T]) Mount(ctx context.Context) {
	v.once.Do(func() {
		ctx, cancel := context.WithCancel(ctx)

		v.mu.Lock()
		v.cancel = cancel
		v.mounted = true
		v.mu.Unlock()

		go v.load(ctx)
	})
}

// Unmount cancels the fetch if it is still running. The view keeps
// whatever state it had.
func (v *View[T]) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mounted = false
	if v.cancel != nil {
		v.cancel()
	}
}

// Wait blocks until the fetch settles or ctx ends. It returns ctx.Err() in
// the latter case.
func (v *View[T]) Wait(ctx context.Context) error {
	select {
	case <-v.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap
}

func (v *View[T]) load(ctx context.Context) {
	defer close(v.done)
	defer v.cancelFetch()

	data, ok, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.mounted {
		v.logger.Debug(ctx, "result dropped after unmount")
		return
	}

	switch {
	case err != nil:
		v.logger.Warn(ctx, "fetch failed", "error", err)
		v.snap = Snapshot[T]{Status: StatusError, Message: v.errorText}
	case !ok:
		v.snap = Snapshot[T]{Status: StatusAbsent, Message: v.absentMsg}
	default:
		v.snap = Snapshot[T]{Status: StatusLoaded, Data: data}
	}
}

func (v *View[T]) cancelFetch() {
	v.mu.RLock()
	cancel := v.cancel
	v.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
}
