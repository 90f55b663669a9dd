// ABOUTME: Availability guard owning the storage handle.
// ABOUTME: Wraps every DAL operation with classify-and-fallback behavior.
package guard

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tomaszwojcikowski/fitrack3/internal/storage"
)

// Status is the guard's view of the store, readable at any time via
// Guard.Status.
type Status struct {
	Available bool
	LastErr   error
	LastKind  storage.FailureKind
	CheckedAt time.Time
}

// Guard owns the single process-wide storage handle and keeps the rest of
// the app total: wrapped operations return their natural empty value
// instead of an error when the store is unusable. Quota-exceeded and
// invalid-state failures flip availability off permanently; a closed
// handle earns exactly one reopen-and-retry; anything else is logged and
// treated as a one-off.
type Guard struct {
	mu     sync.Mutex
	db     *storage.DB
	open   func() (*storage.DB, error)
	log    *slog.Logger
	status Status
}

// New creates a guard around an opener for the underlying store. The
// opener is invoked by Check and by the single reopen-and-retry path.
func New(open func() (*storage.DB, error), logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{open: open, log: logger}
}

// Check probes whether the store is usable: it opens the database and
// performs one trivial count, because opening alone can succeed while
// reads still fail on constrained filesystems. The result and last error
// are recorded in the guard's status.
func (g *Guard) Check() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db == nil {
		db, err := g.open()
		if err != nil {
			g.recordLocked(false, err)
			return false
		}
		g.db = db
	}

	if _, err := g.db.CountExercises(); err != nil {
		g.recordLocked(false, err)
		return false
	}

	g.recordLocked(true, nil)
	return true
}

// Status returns the last recorded availability state.
func (g *Guard) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// DB exposes the raw handle for collaborators that need real errors (the
// seed loader, migrations tooling). Nil while the store is unavailable.
func (g *Guard) DB() *storage.DB {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.status.Available {
		return nil
	}
	return g.db
}

// Close releases the underlying handle.
func (g *Guard) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	g.status.Available = false
	return err
}

func (g *Guard) handle() (*storage.DB, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.status.Available || g.db == nil {
		return nil, false
	}
	return g.db, true
}

// reopen replaces a closed handle. Called at most once per failed
// operation.
func (g *Guard) reopen() (*storage.DB, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db != nil {
		_ = g.db.Close()
	}
	db, err := g.open()
	if err != nil {
		g.db = nil
		return nil, err
	}
	g.db = db
	g.recordLocked(true, nil)
	return db, nil
}

func (g *Guard) markUnavailable(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.recordLocked(false, err)
}

func (g *Guard) recordLocked(available bool, err error) {
	g.status = Status{
		Available: available,
		LastErr:   err,
		LastKind:  storage.Classify(err),
		CheckedAt: time.Now(),
	}
}

// call runs one wrapped operation, applying the guard's failure policy.
// It never returns an error; unusable stores yield the fallback.
func call[T any](g *Guard, op string, fallback T, fn func(*storage.DB) (T, error)) T {
	db, ok := g.handle()
	if !ok {
		return fallback
	}

	v, err := fn(db)
	if err == nil {
		return v
	}

	switch storage.Classify(err) {
	case storage.FailureClosed:
		// Transient: the handle went away underneath us. One reopen, one
		// retry; a second failure flips availability off.
		db, rerr := g.reopen()
		if rerr != nil {
			g.markUnavailable(rerr)
			g.log.Warn("storage reopen failed", "op", op, "err", rerr)
			return fallback
		}
		v, err = fn(db)
		if err != nil {
			g.markUnavailable(err)
			g.log.Warn("storage retry failed", "op", op, "err", err)
			return fallback
		}
		return v
	case storage.FailureQuota, storage.FailureInvalidState:
		g.markUnavailable(err)
		g.log.Error("storage unavailable", "op", op, "kind", storage.Classify(err).String(), "err", err)
		return fallback
	default:
		g.log.Warn("storage operation failed", "op", op, "err", err)
		return fallback
	}
}
