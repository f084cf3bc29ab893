package engine

import (
	"context"

	"github.com/wagerworks/ecosim/internal/repos/accounts"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
)

// VaultResult is a completed vault movement.
type VaultResult struct {
	Balance  int64
	Vault    int64
	Capacity int64
	Unlocked []string
}

// Deposit moves coins from the wallet into the level-capped vault, where
// they are safe from robbery.
func (e *Engine) Deposit(ctx context.Context, accountID uint64, amount int64) (VaultResult, error) {
	if amount <= 0 {
		return VaultResult{}, ErrInvalidAmount
	}

	var res VaultResult
	now := e.now()
	perLevel := e.catalog.Tuning.VaultPerLevel

	_, err := e.accounts.Mutate(ctx, accountID, func(a *accounts.Account) ([]ledger.Record, error) {
		if a.Balance < amount {
			return nil, ErrInsufficientFunds
		}
		if a.Vault+amount > a.VaultCapacity(perLevel) {
			return nil, ErrVaultCapacity
		}

		a.Balance -= amount
		a.Vault += amount

		recs := []ledger.Record{
			ledger.New(a.ID, ledger.CategoryVault, -amount, "vault deposit", now),
		}

		achRecs, unlocked, _ := e.settle(a, 0, now)
		recs = append(recs, achRecs...)
		res.Unlocked = unlocked

		res.Balance = a.Balance
		res.Vault = a.Vault
		res.Capacity = a.VaultCapacity(perLevel)

		return recs, nil
	})
	if err != nil {
		return VaultResult{}, err
	}

	return res, nil
}

// Withdraw moves coins from the vault back into the wallet.
func (e *Engine) Withdraw(ctx context.Context, accountID uint64, amount int64) (VaultResult, error) {
	if amount <= 0 {
		return VaultResult{}, ErrInvalidAmount
	}

	var res VaultResult
	now := e.now()
	perLevel := e.catalog.Tuning.VaultPerLevel

	_, err := e.accounts.Mutate(ctx, accountID, func(a *accounts.Account) ([]ledger.Record, error) {
		if a.Vault < amount {
			return nil, ErrInsufficientFunds
		}

		a.Vault -= amount
		a.Balance += amount

		res.Balance = a.Balance
		res.Vault = a.Vault
		res.Capacity = a.VaultCapacity(perLevel)

		return []ledger.Record{
			ledger.New(a.ID, ledger.CategoryVault, amount, "vault withdrawal", now),
		}, nil
	})
	if err != nil {
		return VaultResult{}, err
	}

	return res, nil
}
