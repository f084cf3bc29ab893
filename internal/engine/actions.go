package engine

import (
	"context"
	"fmt"

	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/internal/engine/achievements"
	"github.com/wagerworks/ecosim/internal/engine/boost"
	"github.com/wagerworks/ecosim/internal/engine/cooldown"
	"github.com/wagerworks/ecosim/internal/engine/reward"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
)

// ActionResult is a resolved earn action.
type ActionResult struct {
	Success   bool
	Entry     string
	Amount    int64
	XP        int64
	ItemFound string

	Balance    int64
	Level      int
	Experience int64
	LeveledUp  bool
	Unlocked   []string
	Boosted    bool
}

// Work resolves one shift from the jobs table. Jobs always succeed.
func (e *Engine) Work(ctx context.Context, accountID uint64) (ActionResult, error) {
	return e.action(ctx, accountID, "work", e.catalog.Jobs, achievements.StatWorkCount, false)
}

// Crime resolves one risk action from the crimes table. A failed crime
// charges the penalty, capped at the account balance.
func (e *Engine) Crime(ctx context.Context, accountID uint64) (ActionResult, error) {
	return e.action(ctx, accountID, "crime", e.catalog.Crimes, achievements.StatCrimeCount, true)
}

// Forage resolves one location from the named area's table (dig, fish,
// search). Each location carries an independent item-drop trial.
func (e *Engine) Forage(ctx context.Context, accountID uint64, area string) (ActionResult, error) {
	defs, ok := e.catalog.Forage[area]
	if !ok || len(defs) == 0 {
		return ActionResult{}, fmt.Errorf("%w: forage area %q", ErrUnknownAction, area)
	}

	return e.action(ctx, accountID, area, defs, achievements.StatForageCount, false)
}

func (e *Engine) action(ctx context.Context, accountID uint64, family string, defs []catalog.ActionDef, stat string, risky bool) (ActionResult, error) {
	var (
		res      ActionResult
		rejected error
	)
	now := e.now()

	_, err := e.accounts.Mutate(ctx, accountID, func(a *accounts.Account) ([]ledger.Record, error) {
		gate := cooldown.Check(a.Cooldowns, family, e.catalog.Cooldown(family), now)
		if !gate.Allowed {
			return nil, &CooldownError{Family: family, Remaining: gate.Remaining}
		}

		// A screened-out attempt still consumes the cooldown, so the commit
		// carries the stamp and nothing else.
		if err := e.screen(ctx, a); err != nil {
			rejected = err
			cooldown.Stamp(a.Cooldowns, family, now)
			return nil, nil
		}

		def := reward.Pick(e.rand, defs)
		res.Entry = def.Name

		outcome := boost.Outcome{XP: def.XP}
		if risky {
			roll := reward.Roll(e.rand, def, a.Balance)
			res.Success = roll.Success
			outcome.Coins = roll.Amount
			if !roll.Success {
				outcome.XP = 0
			}
		} else {
			res.Success = true
			outcome.Coins = reward.Payout(e.rand, def)
		}

		outcome = e.boost.Apply(outcome, now)
		res.Boosted = e.boost.Active(now)
		res.Amount = outcome.Coins
		res.XP = outcome.XP

		a.Balance += outcome.Coins
		a.BumpStat(stat, 1)

		recs := make([]ledger.Record, 0, 2)
		switch {
		case outcome.Coins > 0:
			recs = append(recs, ledger.New(a.ID, ledger.CategoryEarn, outcome.Coins, family+": "+def.Name, now))
		case outcome.Coins < 0:
			recs = append(recs, ledger.New(a.ID, ledger.CategoryFine, outcome.Coins, family+" failed: "+def.Name, now))
		}

		if !risky || res.Success {
			if drop := reward.DropRoll(e.rand, def); drop.Found {
				a.Inventory[drop.Item]++
				res.ItemFound = drop.Item
			}
		}

		achRecs, unlocked, leveledUp := e.settle(a, outcome.XP, now)
		recs = append(recs, achRecs...)
		res.Unlocked = unlocked
		res.LeveledUp = leveledUp

		cooldown.Stamp(a.Cooldowns, family, now)

		res.Balance = a.Balance
		res.Level = a.Level
		res.Experience = a.Experience

		return recs, nil
	})
	if err != nil {
		return ActionResult{}, err
	}
	if rejected != nil {
		return ActionResult{}, rejected
	}

	return res, nil
}
