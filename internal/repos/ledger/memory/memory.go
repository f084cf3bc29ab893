// Package memory is the in-process ledger backend used by tests and the dev
// server.
package memory

import (
	"context"
	"sync"

	"github.com/wagerworks/ecosim/internal/repos/ledger"
)

var _ ledger.Store = (*Store)(nil)

type Store struct {
	mu   sync.RWMutex
	recs []ledger.Record
}

func New() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, recs ...ledger.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = append(s.recs, recs...)

	return nil
}

func (s *Store) ListRecent(_ context.Context, accountID uint64, limit int) ([]ledger.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ledger.Record
	for i := len(s.recs) - 1; i >= 0 && len(out) < limit; i-- {
		if s.recs[i].AccountID == accountID {
			out = append(out, s.recs[i])
		}
	}

	return out, nil
}

// All returns a copy of every record, newest last. Test helper.
func (s *Store) All() []ledger.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ledger.Record, len(s.recs))
	copy(out, s.recs)

	return out
}
