package engine

import (
	"context"

	"github.com/wagerworks/ecosim/internal/engine/achievements"
	"github.com/wagerworks/ecosim/internal/engine/cooldown"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// TransferResult reports both sides of a completed two-party operation.
type TransferResult struct {
	Amount        int64
	SenderBalance int64
	Unlocked      []string
}

// GiveCoins moves amount from one account to another. Both deltas and both
// ledger records commit atomically; coins are conserved exactly.
func (e *Engine) GiveCoins(ctx context.Context, fromID, toID uint64, amount int64) (TransferResult, error) {
	if amount <= 0 {
		return TransferResult{}, ErrInvalidAmount
	}

	var (
		res      TransferResult
		rejected error
	)
	now := e.now()

	err := e.accounts.MutatePair(ctx, fromID, toID, func(from, to *accounts.Account) ([]ledger.Record, error) {
		gate := cooldown.Check(from.Cooldowns, "transfer", e.catalog.Cooldown("transfer"), now)
		if !gate.Allowed {
			return nil, &CooldownError{Family: "transfer", Remaining: gate.Remaining}
		}

		if err := e.screen(ctx, from); err != nil {
			rejected = err
			cooldown.Stamp(from.Cooldowns, "transfer", now)
			return nil, nil
		}

		if from.Balance < amount {
			return nil, ErrInsufficientFunds
		}

		from.Balance -= amount
		to.Balance += amount
		from.BumpStat(achievements.StatTransfers, 1)

		recs := []ledger.Record{
			ledger.NewWithCounterpart(from.ID, ledger.CategoryTransfer, -amount, to.ID, "transfer sent", now),
			ledger.NewWithCounterpart(to.ID, ledger.CategoryTransfer, amount, from.ID, "transfer received", now),
		}

		achRecs, unlocked, _ := e.settle(from, 0, now)
		recs = append(recs, achRecs...)
		res.Unlocked = unlocked

		cooldown.Stamp(from.Cooldowns, "transfer", now)

		res.Amount = amount
		res.SenderBalance = from.Balance

		return recs, nil
	})
	if err != nil {
		return TransferResult{}, err
	}
	if rejected != nil {
		return TransferResult{}, rejected
	}

	e.notifier.Notify(ctx, toID, "you received coins")

	return res, nil
}

// RobResult is the outcome of a theft attempt. Amount is signed from the
// robber's point of view: the stolen sum on success, the penalty on failure.
type RobResult struct {
	Success       bool
	Amount        int64
	RobberBalance int64
}

// Rob attempts to steal a random fraction of the victim's wallet balance.
// Vaulted coins are out of reach. A failed attempt fines the robber, capped
// at their balance.
func (e *Engine) Rob(ctx context.Context, robberID, victimID uint64) (RobResult, error) {
	cfg := e.catalog.Tuning.Rob

	var (
		res      RobResult
		rejected error
	)
	now := e.now()

	err := e.accounts.MutatePair(ctx, robberID, victimID, func(robber, victim *accounts.Account) ([]ledger.Record, error) {
		gate := cooldown.Check(robber.Cooldowns, "rob", e.catalog.Cooldown("rob"), now)
		if !gate.Allowed {
			return nil, &CooldownError{Family: "rob", Remaining: gate.Remaining}
		}

		if err := e.screen(ctx, robber); err != nil {
			rejected = err
			cooldown.Stamp(robber.Cooldowns, "rob", now)
			return nil, nil
		}

		cooldown.Stamp(robber.Cooldowns, "rob", now)

		if rng.Chance(e.rand, cfg.SuccessChance) {
			ceiling := int64(float64(victim.Balance) * cfg.MaxFraction)
			var stolen int64
			if ceiling > 0 {
				stolen = rng.Between(e.rand, 1, ceiling)
			}

			res.Success = true
			res.Amount = stolen

			if stolen == 0 {
				res.RobberBalance = robber.Balance
				return nil, nil
			}

			victim.Balance -= stolen
			robber.Balance += stolen
			res.RobberBalance = robber.Balance

			return []ledger.Record{
				ledger.NewWithCounterpart(robber.ID, ledger.CategoryRob, stolen, victim.ID, "robbery", now),
				ledger.NewWithCounterpart(victim.ID, ledger.CategoryRob, -stolen, robber.ID, "robbed", now),
			}, nil
		}

		penalty := cfg.Penalty
		if penalty > robber.Balance {
			penalty = robber.Balance
		}

		robber.Balance -= penalty
		res.Amount = -penalty
		res.RobberBalance = robber.Balance

		if penalty == 0 {
			return nil, nil
		}

		return []ledger.Record{
			ledger.New(robber.ID, ledger.CategoryFine, -penalty, "failed robbery", now),
		}, nil
	})
	if err != nil {
		return RobResult{}, err
	}
	if rejected != nil {
		return RobResult{}, rejected
	}

	if res.Success && res.Amount > 0 {
		e.notifier.Notify(ctx, victimID, "you were robbed")
	}

	return res, nil
}
