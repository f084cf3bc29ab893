// Package boost applies the recurring weekly bonus window: multiplied coin
// and experience rewards, plus a loss-rescue chance for gambling outcomes.
// There is exactly one rescue implementation; games never roll their own.
package boost

import (
	"time"

	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// Outcome is the slice of an action result the modifier may adjust.
type Outcome struct {
	Coins int64 // signed delta
	XP    int64

	// Gambling outcomes additionally carry the wager so a rescue can shape
	// its minimal win.
	Gambling bool
	Win      bool
	Bet      int64
	Rescued  bool
}

type Modifier struct {
	cfg catalog.Boost
	r   rng.RNG
}

func New(cfg catalog.Boost, r rng.RNG) *Modifier {
	return &Modifier{cfg: cfg, r: r}
}

// Active reports whether the bonus window covers the given instant.
func (m *Modifier) Active(now time.Time) bool {
	return now.Weekday() == m.cfg.Weekday
}

// Apply adjusts an outcome for the bonus window. Outside the window the
// outcome is returned unchanged. Positive coin amounts and experience are
// multiplied; losses are never amplified. For gambling losses a single
// independent rescue roll may convert the loss into a minimal win. A rescue
// only ever upgrades the outcome.
func (m *Modifier) Apply(o Outcome, now time.Time) Outcome {
	if !m.Active(now) {
		return o
	}

	if o.Gambling && !o.Win && rng.Chance(m.r, m.cfg.RescueChance) {
		o.Win = true
		o.Rescued = true
		o.Coins = rescueAmount(o.Bet, m.cfg.RescueFraction)
	}

	if o.Coins > 0 && !o.Rescued {
		o.Coins = int64(float64(o.Coins) * m.cfg.CoinMultiplier)
	}
	if o.XP > 0 {
		o.XP = int64(float64(o.XP) * m.cfg.XPMultiplier)
	}

	return o
}

// rescueAmount is the minimal win granted by a rescue: a fixed fraction of
// the bet, at least one coin.
func rescueAmount(bet int64, fraction float64) int64 {
	amt := int64(float64(bet) * fraction)
	if amt < 1 {
		amt = 1
	}

	return amt
}
