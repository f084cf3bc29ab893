package integrity

import (
	"context"
	"sync"
	"time"
)

// Window is the rolling per-account transaction-velocity detector. It is an
// explicit injectable store rather than a package global so a distributed
// implementation can replace it when the engine is scaled out.
type Window struct {
	mu     sync.Mutex
	events map[uint64][]time.Time

	span      time.Duration
	threshold int
	now       func() time.Time
}

func NewWindow(span time.Duration, threshold int, now func() time.Time) *Window {
	if now == nil {
		now = time.Now
	}

	return &Window{
		events:    map[uint64][]time.Time{},
		span:      span,
		threshold: threshold,
		now:       now,
	}
}

// Allow records an invocation and reports whether the account is still under
// the velocity threshold. Check and update are one critical section so two
// concurrent requests cannot both read a stale window.
func (w *Window) Allow(accountID uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	cutoff := now.Add(-w.span)

	kept := w.events[accountID][:0]
	for _, t := range w.events[accountID] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= w.threshold {
		w.events[accountID] = kept
		return false
	}

	w.events[accountID] = append(kept, now)

	return true
}

// Sweep drops accounts whose entire window has expired and returns how many
// were removed.
func (w *Window) Sweep() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := w.now().Add(-w.span)
	removed := 0

	for id, ts := range w.events {
		live := false
		for _, t := range ts {
			if t.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(w.events, id)
			removed++
		}
	}

	return removed
}

// StartSweeper prunes expired windows until ctx is canceled.
func (w *Window) StartSweeper(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.Sweep()
			}
		}
	}()
}
