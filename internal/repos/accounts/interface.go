// Package accounts defines the player account model and the store contract
// every backend must satisfy. All mutations go through Mutate/MutatePair,
// which serialize per account and commit the account delta together with its
// ledger records as one atomic unit.
package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/wagerworks/ecosim/internal/repos/ledger"
)

var (
	ErrNotFound        = errors.New("account not found")
	ErrAlreadyExists   = errors.New("account already exists")
	ErrNegativeBalance = errors.New("mutation would drive balance negative")
	ErrSameAccount     = errors.New("pair mutation requires two distinct accounts")
)

// Account is a player's persistent economic state. The store owns it; the
// engine reads a snapshot and mutates through a Mutator.
type Account struct {
	ID           uint64
	Balance      int64
	Vault        int64
	Level        int
	Experience   int64
	Inventory    map[string]int64
	Achievements map[string]struct{}
	GameStats    map[string]int64
	Cooldowns    map[string]time.Time
}

// NewAccount returns a level-1 account with empty collections.
func NewAccount(id uint64, balance int64) Account {
	return Account{
		ID:           id,
		Balance:      balance,
		Level:        1,
		Inventory:    map[string]int64{},
		Achievements: map[string]struct{}{},
		GameStats:    map[string]int64{},
		Cooldowns:    map[string]time.Time{},
	}
}

// Clone deep-copies the account so mutators can work on a scratch copy.
func (a Account) Clone() Account {
	c := a
	c.Inventory = make(map[string]int64, len(a.Inventory))
	for k, v := range a.Inventory {
		c.Inventory[k] = v
	}
	c.Achievements = make(map[string]struct{}, len(a.Achievements))
	for k := range a.Achievements {
		c.Achievements[k] = struct{}{}
	}
	c.GameStats = make(map[string]int64, len(a.GameStats))
	for k, v := range a.GameStats {
		c.GameStats[k] = v
	}
	c.Cooldowns = make(map[string]time.Time, len(a.Cooldowns))
	for k, v := range a.Cooldowns {
		c.Cooldowns[k] = v
	}

	return c
}

func (a *Account) HasAchievement(id string) bool {
	_, ok := a.Achievements[id]
	return ok
}

// BumpStat increments a game-stats counter used by achievement predicates.
func (a *Account) BumpStat(name string, delta int64) {
	if a.GameStats == nil {
		a.GameStats = map[string]int64{}
	}
	a.GameStats[name] += delta
}

func (a *Account) Stat(name string) int64 {
	return a.GameStats[name]
}

// VaultCapacity is level-scaled: capacity = level * perLevel.
func (a *Account) VaultCapacity(perLevel int64) int64 {
	return int64(a.Level) * perLevel
}

// InventoryTotal sums all item quantities.
func (a *Account) InventoryTotal() int64 {
	var n int64
	for _, q := range a.Inventory {
		n += q
	}
	return n
}

// Mutator inspects and updates an account under the store's per-account
// serialization. Returned records commit atomically with the account state;
// a returned error aborts the whole unit.
type Mutator func(a *Account) ([]ledger.Record, error)

// PairMutator mutates two accounts under a deadlock-free double lock.
type PairMutator func(a, b *Account) ([]ledger.Record, error)

type Accounts interface {
	Get(ctx context.Context, id uint64) (Account, error)

	// Create registers a new account. Any given records (the opening credit)
	// commit atomically with the creation, matching the Mutate contract.
	Create(ctx context.Context, id uint64, balance int64, recs ...ledger.Record) (Account, error)

	Mutate(ctx context.Context, id uint64, fn Mutator) (Account, error)
	MutatePair(ctx context.Context, idA, idB uint64, fn PairMutator) error
}
