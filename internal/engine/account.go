package engine

import (
	"context"

	"github.com/wagerworks/ecosim/internal/repos/accounts"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
)

// Profile is a read-only account snapshot for callers.
type Profile struct {
	ID            uint64
	Balance       int64
	Vault         int64
	VaultCapacity int64
	Level         int
	Experience    int64
	Inventory     map[string]int64
	Achievements  []string
}

// CreateAccount registers a new player with the configured starting balance.
// The opening credit's ledger record commits with the creation, so an account
// can never exist without a record of where its coins came from.
func (e *Engine) CreateAccount(ctx context.Context, accountID uint64) (Profile, error) {
	balance := e.catalog.Tuning.StartingBalance

	var recs []ledger.Record
	if balance > 0 {
		recs = append(recs, ledger.New(accountID, ledger.CategoryEarn, balance, "starting balance", e.now()))
	}

	a, err := e.accounts.Create(ctx, accountID, balance, recs...)
	if err != nil {
		return Profile{}, err
	}

	return e.profile(a), nil
}

// Balance returns the account snapshot.
func (e *Engine) Balance(ctx context.Context, accountID uint64) (Profile, error) {
	a, err := e.accounts.Get(ctx, accountID)
	if err != nil {
		return Profile{}, err
	}

	return e.profile(a), nil
}

// History lists the account's most recent ledger records, newest first.
func (e *Engine) History(ctx context.Context, accountID uint64, limit int) ([]ledger.Record, error) {
	if _, err := e.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}

	return e.records.ListRecent(ctx, accountID, limit)
}

func (e *Engine) profile(a accounts.Account) Profile {
	unlocked := make([]string, 0, len(a.Achievements))
	for id := range a.Achievements {
		unlocked = append(unlocked, id)
	}

	inv := make(map[string]int64, len(a.Inventory))
	for k, v := range a.Inventory {
		inv[k] = v
	}

	return Profile{
		ID:            a.ID,
		Balance:       a.Balance,
		Vault:         a.Vault,
		VaultCapacity: a.VaultCapacity(e.catalog.Tuning.VaultPerLevel),
		Level:         a.Level,
		Experience:    a.Experience,
		Inventory:     inv,
		Achievements:  unlocked,
	}
}
