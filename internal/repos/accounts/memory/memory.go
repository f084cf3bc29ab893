// Package memory is the in-process account backend. Serialization is a
// mutex per account; ledger records are appended to the paired ledger store
// while the account lock is held, so the commit unit matches the durable
// backend's transaction.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wagerworks/ecosim/internal/repos/accounts"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
)

var _ accounts.Accounts = (*Store)(nil)

type entry struct {
	// id duplicates acc.ID so lock ordering can read it without the mutex.
	id uint64

	mu  sync.Mutex
	acc accounts.Account
}

type Store struct {
	mu      sync.RWMutex
	entries map[uint64]*entry
	records ledger.Store
}

func New(records ledger.Store) *Store {
	return &Store{
		entries: map[uint64]*entry{},
		records: records,
	}
}

func (s *Store) lookup(id uint64) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]

	return e, ok
}

func (s *Store) Get(_ context.Context, id uint64) (accounts.Account, error) {
	e, ok := s.lookup(id)
	if !ok {
		return accounts.Account{}, accounts.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.acc.Clone(), nil
}

func (s *Store) Create(ctx context.Context, id uint64, balance int64, recs ...ledger.Record) (accounts.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; ok {
		return accounts.Account{}, accounts.ErrAlreadyExists
	}

	if err := s.records.Append(ctx, recs...); err != nil {
		return accounts.Account{}, err
	}

	acc := accounts.NewAccount(id, balance)
	s.entries[id] = &entry{id: id, acc: acc}

	return acc.Clone(), nil
}

func (s *Store) Mutate(ctx context.Context, id uint64, fn accounts.Mutator) (accounts.Account, error) {
	e, ok := s.lookup(id)
	if !ok {
		return accounts.Account{}, accounts.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	scratch := e.acc.Clone()

	recs, err := fn(&scratch)
	if err != nil {
		return accounts.Account{}, err
	}

	if scratch.Balance < 0 {
		return accounts.Account{}, accounts.ErrNegativeBalance
	}

	err = s.records.Append(ctx, recs...)
	if err != nil {
		return accounts.Account{}, err
	}

	e.acc = scratch

	return scratch.Clone(), nil
}

func (s *Store) MutatePair(ctx context.Context, idA, idB uint64, fn accounts.PairMutator) error {
	if idA == idB {
		return accounts.ErrSameAccount
	}

	ea, ok := s.lookup(idA)
	if !ok {
		return accounts.ErrNotFound
	}
	eb, ok := s.lookup(idB)
	if !ok {
		return accounts.ErrNotFound
	}

	// Canonical lock order by ID to avoid deadlock with a concurrent
	// mutation of the reversed pair.
	locks := []*entry{ea, eb}
	sort.Slice(locks, func(i, j int) bool { return locks[i].id < locks[j].id })
	for _, l := range locks {
		l.mu.Lock()
	}
	defer func() {
		for _, l := range locks {
			l.mu.Unlock()
		}
	}()

	sa := ea.acc.Clone()
	sb := eb.acc.Clone()

	recs, err := fn(&sa, &sb)
	if err != nil {
		return err
	}

	if sa.Balance < 0 || sb.Balance < 0 {
		return accounts.ErrNegativeBalance
	}

	err = s.records.Append(ctx, recs...)
	if err != nil {
		return err
	}

	ea.acc = sa
	eb.acc = sb

	return nil
}
