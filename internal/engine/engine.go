// Package engine orchestrates the economy pipeline. Every operation runs
// inside the account store's atomic mutation: cooldown gate, integrity
// screen, outcome resolution, boost, stat and experience accrual, level
// resolution, achievement evaluation, and ledger records all commit as one
// unit or not at all.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/internal/engine/achievements"
	"github.com/wagerworks/ecosim/internal/engine/boost"
	"github.com/wagerworks/ecosim/internal/engine/games"
	"github.com/wagerworks/ecosim/internal/engine/integrity"
	"github.com/wagerworks/ecosim/internal/engine/level"
	"github.com/wagerworks/ecosim/internal/notify"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
	"github.com/wagerworks/ecosim/pkg/rng"
)

type Engine struct {
	accounts accounts.Accounts
	records  ledger.Store
	catalog  *catalog.Catalog

	// rand adjudicates every monetary outcome; tests inject a seeded source.
	rand     rng.RNG
	boost    *boost.Modifier
	velocity *integrity.Window
	sessions *games.SessionStore
	notifier notify.Notifier

	now func() time.Time
	log *slog.Logger
}

// Options carries the injectable pieces. Zero-value fields fall back to
// production defaults.
type Options struct {
	Rand     rng.RNG
	Notifier notify.Notifier
	Now      func() time.Time
	Log      *slog.Logger
}

func New(acc accounts.Accounts, recs ledger.Store, cat *catalog.Catalog, opts Options) *Engine {
	if opts.Rand == nil {
		opts.Rand = rng.NewCrypto()
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Discard{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	tuning := cat.Tuning

	return &Engine{
		accounts: acc,
		records:  recs,
		catalog:  cat,
		rand:     opts.Rand,
		boost:    boost.New(tuning.Boost, opts.Rand),
		velocity: integrity.NewWindow(tuning.Integrity.RapidWindow.Std(), tuning.Integrity.RapidThreshold, opts.Now),
		sessions: games.NewSessionStore(cat.Games.Mines, opts.Now),
		notifier: opts.Notifier,
		now:      opts.Now,
		log:      opts.Log,
	}
}

// Velocity exposes the rapid-transaction window for sweeper wiring.
func (e *Engine) Velocity() *integrity.Window { return e.velocity }

// Sessions exposes the mines session store for sweeper wiring.
func (e *Engine) Sessions() *games.SessionStore { return e.sessions }

// screen runs the integrity checks shared by every mutating operation. A
// failure is reported through the audit channel; the caller stamps the
// cooldown and surfaces the generic rejection, so a rejected attempt still
// consumes its gate.
func (e *Engine) screen(ctx context.Context, a *accounts.Account) error {
	if !e.velocity.Allow(a.ID) {
		e.notifier.Audit(ctx, "rapid transactions", "account_id", a.ID)
		return ErrRejected
	}

	if v := integrity.ValidateAccount(a, e.catalog.Tuning.Integrity); v != nil {
		e.notifier.Audit(ctx, "account state violation", "account_id", a.ID, "reason", v.Reason)
		return ErrRejected
	}

	return nil
}

// settle grants experience, resolves level-ups, and pays newly qualified
// achievements. Achievement rewards can themselves qualify further unlocks
// (a payout crossing a balance threshold), so evaluation loops to a fixed
// point. Returns the ledger records for the payouts and the unlocked names.
func (e *Engine) settle(a *accounts.Account, xp int64, at time.Time) (recs []ledger.Record, unlocked []string, leveledUp bool) {
	if xp > 0 {
		a.Experience += xp
		before := a.Level
		a.Level, a.Experience = level.Resolve(a.Level, a.Experience, e.catalog.Tuning.LevelThreshold)
		leveledUp = a.Level > before
	}

	for {
		defs := achievements.Evaluate(a, e.catalog.Achievements)
		if len(defs) == 0 {
			break
		}

		for _, def := range defs {
			a.Achievements[def.ID] = struct{}{}
			unlocked = append(unlocked, def.Name)

			if def.Reward > 0 {
				a.Balance += def.Reward
				recs = append(recs, ledger.New(a.ID, ledger.CategoryAchievement, def.Reward, "achievement: "+def.Name, at))
			}
		}
	}

	return recs, unlocked, leveledUp
}
