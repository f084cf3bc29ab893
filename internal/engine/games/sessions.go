package games

import (
	"context"
	"sync"
	"time"

	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// SessionStore holds at most one active mines session per account. It is an
// explicit injectable store with TTL cleanup so a distributed backend can
// replace it when the engine is scaled horizontally.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uint64]*MinesSession

	params catalog.MinesParams
	now    func() time.Time
}

func NewSessionStore(params catalog.MinesParams, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}

	return &SessionStore{
		sessions: map[uint64]*MinesSession{},
		params:   params,
		now:      now,
	}
}

// Start creates a session for the account. One active session per account
// is a hard precondition.
func (st *SessionStore) Start(r rng.RNG, accountID uint64, bet int64) (*MinesSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, active := st.sessions[accountID]; active {
		return nil, ErrSessionActive
	}

	s := newMinesSession(r, st.params, accountID, bet, st.now())
	st.sessions[accountID] = s

	return s, nil
}

// Get returns the account's active session for inspection. Mutations must
// go through WithSession.
func (st *SessionStore) Get(accountID uint64) (*MinesSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[accountID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return s, nil
}

// Arm marks the session's wager as committed. WithSession refuses sessions
// that were reserved but never funded.
func (st *SessionStore) Arm(accountID uint64) {
	st.mu.Lock()
	s, ok := st.sessions[accountID]
	st.mu.Unlock()

	if !ok {
		return
	}

	s.mu.Lock()
	s.armed = true
	s.mu.Unlock()
}

// WithSession runs fn with the account's armed session under the session
// lock, so reveals and settlements serialize against each other. Returning
// end=true destroys the session atomically with fn's effects, whatever fn's
// error; of N concurrent callers racing to settle, exactly one sees the live
// session and the rest get ErrSessionNotFound.
func (st *SessionStore) WithSession(accountID uint64, fn func(s *MinesSession) (end bool, err error)) error {
	st.mu.Lock()
	s, ok := st.sessions[accountID]
	st.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done || !s.armed {
		return ErrSessionNotFound
	}

	end, err := fn(s)
	if end {
		s.done = true

		st.mu.Lock()
		// Guard against a newer session for the same account.
		if st.sessions[accountID] == s {
			delete(st.sessions, accountID)
		}
		st.mu.Unlock()
	}

	return err
}

// End destroys the account's session, if any.
func (st *SessionStore) End(accountID uint64) {
	st.mu.Lock()
	s, ok := st.sessions[accountID]
	delete(st.sessions, accountID)
	st.mu.Unlock()

	if !ok {
		return
	}

	s.mu.Lock()
	s.done = true
	s.mu.Unlock()
}

// Sweep removes abandoned sessions past the TTL and returns their count.
// The wager was debited at start; abandonment forfeits it.
func (st *SessionStore) Sweep() int {
	st.mu.Lock()
	cutoff := st.now().Add(-st.params.SessionTTL.Std())

	var expired []*MinesSession
	for id, s := range st.sessions {
		if s.StartedAt.Before(cutoff) {
			delete(st.sessions, id)
			expired = append(expired, s)
		}
	}
	st.mu.Unlock()

	// Marking outside the store lock keeps the lock order session-then-store,
	// matching WithSession.
	for _, s := range expired {
		s.mu.Lock()
		s.done = true
		s.mu.Unlock()
	}

	return len(expired)
}

// StartSweeper prunes abandoned sessions until ctx is canceled.
func (st *SessionStore) StartSweeper(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.Sweep()
			}
		}
	}()
}
