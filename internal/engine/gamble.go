package engine

import (
	"context"

	"github.com/wagerworks/ecosim/internal/engine/achievements"
	"github.com/wagerworks/ecosim/internal/engine/boost"
	"github.com/wagerworks/ecosim/internal/engine/cooldown"
	"github.com/wagerworks/ecosim/internal/engine/games"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
	"github.com/wagerworks/ecosim/pkg/rng"
)

const gambleFamily = "gamble"

// GambleResult is a resolved wager. Amount is the signed profit.
type GambleResult struct {
	Win     bool
	Amount  int64
	Rescued bool
	Details map[string]any

	Balance  int64
	Unlocked []string
}

func (e *Engine) Coinflip(ctx context.Context, accountID uint64, bet int64, side string) (GambleResult, error) {
	return e.play(ctx, accountID, bet, "coinflip", func(r rng.RNG) (games.Result, error) {
		return games.Coinflip(r, e.catalog.Games.Coinflip, bet, side)
	})
}

func (e *Engine) Dice(ctx context.Context, accountID uint64, bet int64, guess int) (GambleResult, error) {
	return e.play(ctx, accountID, bet, "dice", func(r rng.RNG) (games.Result, error) {
		return games.Dice(r, e.catalog.Games.Dice, bet, guess)
	})
}

func (e *Engine) Roulette(ctx context.Context, accountID uint64, bet int64, betType string, number int) (GambleResult, error) {
	return e.play(ctx, accountID, bet, "roulette", func(r rng.RNG) (games.Result, error) {
		return games.Roulette(r, e.catalog.Games.Roulette, bet, betType, number)
	})
}

func (e *Engine) HighLow(ctx context.Context, accountID uint64, bet int64, guess string) (GambleResult, error) {
	return e.play(ctx, accountID, bet, "highlow", func(r rng.RNG) (games.Result, error) {
		return games.HighLow(r, e.catalog.Games.HighLow, bet, guess)
	})
}

func (e *Engine) Slots(ctx context.Context, accountID uint64, bet int64) (GambleResult, error) {
	return e.play(ctx, accountID, bet, "slots", func(r rng.RNG) (games.Result, error) {
		return games.Slots(r, e.catalog.Games.Slots, bet), nil
	})
}

func (e *Engine) Crash(ctx context.Context, accountID uint64, bet int64, cashOut float64) (GambleResult, error) {
	return e.play(ctx, accountID, bet, "crash", func(r rng.RNG) (games.Result, error) {
		return games.Crash(r, e.catalog.Games.Crash, bet, cashOut)
	})
}

func (e *Engine) Plinko(ctx context.Context, accountID uint64, bet int64, tier string) (GambleResult, error) {
	return e.play(ctx, accountID, bet, "plinko", func(r rng.RNG) (games.Result, error) {
		return games.Plinko(r, e.catalog.Games.Plinko, bet, tier)
	})
}

func (e *Engine) Lottery(ctx context.Context, accountID uint64, bet int64, picks []int) (GambleResult, error) {
	return e.play(ctx, accountID, bet, "lottery", func(r rng.RNG) (games.Result, error) {
		return games.Lottery(r, e.catalog.Games.Lottery, bet, picks)
	})
}

func (e *Engine) Blackjack(ctx context.Context, accountID uint64, bet int64) (GambleResult, error) {
	return e.play(ctx, accountID, bet, "blackjack", func(r rng.RNG) (games.Result, error) {
		return games.Blackjack(r, e.catalog.Games.Blackjack, bet), nil
	})
}

func (e *Engine) Scratch(ctx context.Context, accountID uint64, bet int64) (GambleResult, error) {
	return e.play(ctx, accountID, bet, "scratch", func(r rng.RNG) (games.Result, error) {
		return games.Scratch(r, e.catalog.Games.Scratch, bet), nil
	})
}

// play runs the shared gambling pipeline: bet bounds, cooldown gate,
// integrity screen, funds check, game resolution, boost, stats, ledger.
// The resolve closure sees only the injected random source; everything
// monetary commits in one unit.
func (e *Engine) play(ctx context.Context, accountID uint64, bet int64, game string, resolve func(rng.RNG) (games.Result, error)) (GambleResult, error) {
	limits := e.catalog.Games
	if bet < limits.MinBet || bet > limits.MaxBet {
		return GambleResult{}, ErrInvalidBet
	}

	var (
		res      GambleResult
		rejected error
	)
	now := e.now()

	_, err := e.accounts.Mutate(ctx, accountID, func(a *accounts.Account) ([]ledger.Record, error) {
		gate := cooldown.Check(a.Cooldowns, gambleFamily, e.catalog.Cooldown(gambleFamily), now)
		if !gate.Allowed {
			return nil, &CooldownError{Family: gambleFamily, Remaining: gate.Remaining}
		}

		if err := e.screen(ctx, a); err != nil {
			rejected = err
			cooldown.Stamp(a.Cooldowns, gambleFamily, now)
			return nil, nil
		}

		if a.Balance < bet {
			return nil, ErrInsufficientFunds
		}

		outcome, err := resolve(e.rand)
		if err != nil {
			return nil, err
		}

		adjusted := e.boost.Apply(boost.Outcome{
			Coins:    outcome.Amount,
			Gambling: true,
			Win:      outcome.Win,
			Bet:      bet,
		}, now)

		res.Win = adjusted.Win
		res.Amount = adjusted.Coins
		res.Rescued = adjusted.Rescued
		res.Details = outcome.Details

		a.Balance += adjusted.Coins
		a.BumpStat(achievements.StatGambleCount, 1)
		a.BumpStat(achievements.StatTotalWagered, bet)
		if adjusted.Coins > 0 {
			a.BumpStat(achievements.StatGambleWins, 1)
		}

		recs := make([]ledger.Record, 0, 2)
		switch {
		case adjusted.Coins > 0:
			recs = append(recs, ledger.New(a.ID, ledger.CategoryGambleWin, adjusted.Coins, game+" win", now))
		case adjusted.Coins < 0:
			recs = append(recs, ledger.New(a.ID, ledger.CategoryGambleLoss, adjusted.Coins, game+" loss", now))
		}

		achRecs, unlocked, _ := e.settle(a, 0, now)
		recs = append(recs, achRecs...)
		res.Unlocked = unlocked

		cooldown.Stamp(a.Cooldowns, gambleFamily, now)
		res.Balance = a.Balance

		return recs, nil
	})
	if err != nil {
		return GambleResult{}, err
	}
	if rejected != nil {
		return GambleResult{}, rejected
	}

	return res, nil
}
