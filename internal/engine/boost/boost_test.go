package boost

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

var cfg = catalog.Boost{
	Weekday:        time.Saturday,
	CoinMultiplier: 2.0,
	XPMultiplier:   1.5,
	RescueChance:   0.15,
	RescueFraction: 0.25,
}

var (
	saturday = time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)
	monday   = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
)

func TestActive_WeekdayOnly(t *testing.T) {
	t.Parallel()

	m := New(cfg, rng.NewSeeded(1))

	assert.True(t, m.Active(saturday))
	assert.False(t, m.Active(monday))
}

func TestApply_OutsideWindowUnchanged(t *testing.T) {
	t.Parallel()

	m := New(cfg, rng.NewSeeded(1))

	o := Outcome{Coins: 100, XP: 20}
	assert.Equal(t, o, m.Apply(o, monday))
}

func TestApply_MultipliesRewards(t *testing.T) {
	t.Parallel()

	m := New(cfg, rng.NewSeeded(1))

	got := m.Apply(Outcome{Coins: 100, XP: 20}, saturday)
	assert.EqualValues(t, 200, got.Coins)
	assert.EqualValues(t, 30, got.XP)
}

func TestApply_NeverAmplifiesLosses(t *testing.T) {
	t.Parallel()

	m := New(cfg, rng.NewSeeded(1))

	got := m.Apply(Outcome{Coins: -300, XP: 0}, saturday)
	assert.EqualValues(t, -300, got.Coins, "fines must not be multiplied")
}

func TestApply_RescueOnlyUpgrades(t *testing.T) {
	t.Parallel()

	always := New(catalog.Boost{
		Weekday: time.Saturday, CoinMultiplier: 2, XPMultiplier: 1,
		RescueChance: 1, RescueFraction: 0.25,
	}, rng.NewSeeded(2))

	loss := Outcome{Gambling: true, Win: false, Bet: 400, Coins: -400}
	got := always.Apply(loss, saturday)
	assert.True(t, got.Win)
	assert.True(t, got.Rescued)
	assert.EqualValues(t, 100, got.Coins, "rescue pays the configured fraction of the bet")

	// A win passes through untouched by the rescue path.
	win := Outcome{Gambling: true, Win: true, Bet: 400, Coins: 380}
	got = always.Apply(win, saturday)
	assert.True(t, got.Win)
	assert.False(t, got.Rescued)
	assert.EqualValues(t, 760, got.Coins, "win amount is boosted, not rescued")
}

func TestApply_RescueRateConverges(t *testing.T) {
	t.Parallel()

	m := New(cfg, rng.NewSeeded(3))

	rescued := 0
	const n = 50_000
	for _i := 0; _i < n; _i++ {
		got := m.Apply(Outcome{Gambling: true, Bet: 100, Coins: -100}, saturday)
		if got.Rescued {
			rescued++
		}
	}

	assert.InDelta(t, 0.15, float64(rescued)/n, 0.01)
}

func TestApply_RescueMinimumOneCoin(t *testing.T) {
	t.Parallel()

	always := New(catalog.Boost{
		Weekday: time.Saturday, CoinMultiplier: 1, XPMultiplier: 1,
		RescueChance: 1, RescueFraction: 0.25,
	}, rng.NewSeeded(4))

	got := always.Apply(Outcome{Gambling: true, Bet: 2, Coins: -2}, saturday)
	assert.EqualValues(t, 1, got.Coins)
}
