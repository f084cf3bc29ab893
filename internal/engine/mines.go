package engine

import (
	"context"
	"time"

	"github.com/wagerworks/ecosim/internal/engine/achievements"
	"github.com/wagerworks/ecosim/internal/engine/boost"
	"github.com/wagerworks/ecosim/internal/engine/cooldown"
	"github.com/wagerworks/ecosim/internal/engine/games"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
)

// MinesState is a snapshot of an in-flight tile-reveal session.
type MinesState struct {
	Bet        int64
	Revealed   int
	Multiplier float64
	Payout     int64
}

// MinesOutcome closes a session: a hazard hit forfeits the wager (unless the
// boost window rescues it), a cash-out credits the accrued payout.
type MinesOutcome struct {
	Hazard      bool
	HazardTiles []int
	Amount      int64
	Rescued     bool
	Balance     int64
	Unlocked    []string
}

// MinesStart opens a session and debits the wager up front. An abandoned
// session forfeits it.
func (e *Engine) MinesStart(ctx context.Context, accountID uint64, bet int64) (MinesState, error) {
	limits := e.catalog.Games
	if bet < limits.MinBet || bet > limits.MaxBet {
		return MinesState{}, ErrInvalidBet
	}

	// Reserving the session slot first makes concurrent starts race on the
	// store's one-per-account rule instead of on the debit. The slot stays
	// unarmed until the debit commits, so reveals cannot touch an unfunded
	// session.
	_, err := e.sessions.Start(e.rand, accountID, bet)
	if err != nil {
		return MinesState{}, err
	}

	var rejected error
	now := e.now()

	_, err = e.accounts.Mutate(ctx, accountID, func(a *accounts.Account) ([]ledger.Record, error) {
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

		a.Balance -= bet
		a.BumpStat(achievements.StatGambleCount, 1)
		a.BumpStat(achievements.StatTotalWagered, bet)

		cooldown.Stamp(a.Cooldowns, gambleFamily, now)

		return []ledger.Record{
			ledger.New(a.ID, ledger.CategorySpend, -bet, "mines wager", now),
		}, nil
	})
	if err != nil || rejected != nil {
		e.sessions.End(accountID)
		if err != nil {
			return MinesState{}, err
		}
		return MinesState{}, rejected
	}

	e.sessions.Arm(accountID)

	return MinesState{Bet: bet, Revealed: 0, Multiplier: 1, Payout: bet}, nil
}

// MinesReveal uncovers one tile. A hazard hit ends the session immediately;
// the wager was already debited at start, so only a boost-window rescue
// writes a further ledger entry.
func (e *Engine) MinesReveal(ctx context.Context, accountID uint64, tile int) (MinesState, *MinesOutcome, error) {
	var (
		state   MinesState
		outcome *MinesOutcome
	)
	now := e.now()

	err := e.sessions.WithSession(accountID, func(s *games.MinesSession) (bool, error) {
		hazard, err := s.Reveal(tile)
		if err != nil {
			return false, err
		}

		if !hazard {
			state = MinesState{
				Bet:        s.Bet,
				Revealed:   s.RevealedCount(),
				Multiplier: s.Multiplier(),
				Payout:     s.Payout(),
			}
			return false, nil
		}

		out := MinesOutcome{Hazard: true, HazardTiles: s.HazardTiles(), Amount: -s.Bet}

		adjusted := e.boost.Apply(boost.Outcome{
			Coins:    -s.Bet,
			Gambling: true,
			Bet:      s.Bet,
		}, now)
		if adjusted.Rescued {
			if err := e.creditRescue(ctx, accountID, s.Bet, adjusted.Coins, now, &out); err != nil {
				return true, err
			}
		}

		outcome = &out

		return true, nil
	})
	if err != nil {
		return MinesState{}, nil, err
	}

	if outcome != nil {
		if outcome.Rescued {
			e.notifier.Notify(ctx, accountID, "mines: hazard hit, wager rescued")
		} else {
			e.notifier.Notify(ctx, accountID, "mines: hazard hit, wager forfeited")
		}
	}

	return state, outcome, nil
}

// creditRescue pays the minimal win granted when the boost window rescues a
// hazard hit. The wager is already gone, so the credit restores it plus the
// rescue amount, mirroring the instant-game loss path.
func (e *Engine) creditRescue(ctx context.Context, accountID uint64, bet, rescue int64, now time.Time, out *MinesOutcome) error {
	_, err := e.accounts.Mutate(ctx, accountID, func(a *accounts.Account) ([]ledger.Record, error) {
		credit := bet + rescue
		a.Balance += credit
		a.BumpStat(achievements.StatGambleWins, 1)

		out.Rescued = true
		out.Amount = rescue

		recs := []ledger.Record{
			ledger.New(a.ID, ledger.CategoryGambleWin, credit, "mines rescue", now),
		}

		achRecs, unlocked, _ := e.settle(a, 0, now)
		recs = append(recs, achRecs...)
		out.Unlocked = unlocked
		out.Balance = a.Balance

		return recs, nil
	})

	return err
}

// MinesCashOut settles the session at the current multiplier. At least one
// safe reveal is required. The credit and the session destruction commit
// under the session lock, so of any concurrent settlement attempts exactly
// one can succeed.
func (e *Engine) MinesCashOut(ctx context.Context, accountID uint64) (MinesOutcome, error) {
	var res MinesOutcome
	now := e.now()

	err := e.sessions.WithSession(accountID, func(s *games.MinesSession) (bool, error) {
		if s.RevealedCount() == 0 {
			return false, games.ErrNoReveals
		}

		_, err := e.accounts.Mutate(ctx, accountID, func(a *accounts.Account) ([]ledger.Record, error) {
			profit := s.Payout() - s.Bet

			adjusted := e.boost.Apply(boost.Outcome{
				Coins:    profit,
				Gambling: true,
				Win:      true,
				Bet:      s.Bet,
			}, now)

			credit := s.Bet + adjusted.Coins
			a.Balance += credit
			a.BumpStat(achievements.StatGambleWins, 1)

			res.Amount = adjusted.Coins
			res.Rescued = adjusted.Rescued

			recs := []ledger.Record{
				ledger.New(a.ID, ledger.CategoryGambleWin, credit, "mines cash-out", now),
			}

			achRecs, unlocked, _ := e.settle(a, 0, now)
			recs = append(recs, achRecs...)
			res.Unlocked = unlocked
			res.Balance = a.Balance

			return recs, nil
		})
		if err != nil {
			// The session survives a failed commit; the client may retry.
			return false, err
		}

		return true, nil
	})
	if err != nil {
		return MinesOutcome{}, err
	}

	return res, nil
}
