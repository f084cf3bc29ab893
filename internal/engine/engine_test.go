package engine

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/internal/engine/games"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
	accmem "github.com/wagerworks/ecosim/internal/repos/accounts/memory"
	"github.com/wagerworks/ecosim/internal/repos/ledger"
	ledmem "github.com/wagerworks/ecosim/internal/repos/ledger/memory"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// A Wednesday, outside the default boost window.
var quietDay = time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

type fixture struct {
	engine  *Engine
	ledger  *ledmem.Store
	catalog *catalog.Catalog
	clock   *time.Time
}

func newFixture(t *testing.T, seed int64, tweak func(*catalog.Catalog)) *fixture {
	t.Helper()

	cat := catalog.Default()
	// Velocity screening off unless a test opts in.
	cat.Tuning.Integrity.RapidThreshold = 1_000_000
	if tweak != nil {
		tweak(cat)
	}
	require.NoError(t, cat.Validate())

	clock := quietDay
	recs := ledmem.New()
	acc := accmem.New(recs)

	e := New(acc, recs, cat, Options{
		Rand: rng.NewSeeded(seed),
		Now:  func() time.Time { return clock },
	})

	return &fixture{engine: e, ledger: recs, catalog: cat, clock: &clock}
}

func (f *fixture) account(t *testing.T, id uint64) Profile {
	t.Helper()

	p, err := f.engine.CreateAccount(context.Background(), id)
	require.NoError(t, err)

	return p
}

func (f *fixture) advance(d time.Duration) {
	*f.clock = f.clock.Add(d)
}

func TestCreateAccount(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 1, nil)
	ctx := context.Background()

	p := f.account(t, 7)
	assert.EqualValues(t, f.catalog.Tuning.StartingBalance, p.Balance)
	assert.Equal(t, 1, p.Level)

	_, err := f.engine.CreateAccount(ctx, 7)
	assert.Error(t, err, "duplicate registration must fail")

	hist, err := f.engine.History(ctx, 7, 10)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, ledger.CategoryEarn, hist[0].Category)
}

func TestWork_PaysWithinTableBounds(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 2, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["work"] = 0
	})
	ctx := context.Background()
	f.account(t, 1)

	var minPay, maxPay int64 = 1 << 62, 0
	for _, j := range f.catalog.Jobs {
		if j.Min < minPay {
			minPay = j.Min
		}
		if j.Max > maxPay {
			maxPay = j.Max
		}
	}

	for _i := 0; _i < 200; _i++ {
		res, err := f.engine.Work(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.GreaterOrEqual(t, res.Amount, minPay)
		assert.LessOrEqual(t, res.Amount, maxPay)
		assert.Positive(t, res.XP)
	}
}

func TestWork_CooldownGate(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 3, nil)
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.Work(ctx, 1)
	require.NoError(t, err)

	_, err = f.engine.Work(ctx, 1)
	var cdErr *CooldownError
	require.ErrorAs(t, err, &cdErr)
	assert.Equal(t, "work", cdErr.Family)
	assert.Positive(t, cdErr.Remaining)

	f.advance(f.catalog.Cooldown("work"))
	_, err = f.engine.Work(ctx, 1)
	assert.NoError(t, err)
}

func TestCrime_PenaltyCappedAtBalance(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 4, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["crime"] = 0
		c.Tuning.StartingBalance = 5
		// Guaranteed failure with a penalty far above the balance.
		c.Crimes = []catalog.ActionDef{
			{ID: "doomed", Name: "Doomed", Min: 1, Max: 2, XP: 1, SuccessChance: 0, Penalty: 10_000},
		}
	})
	ctx := context.Background()
	f.account(t, 1)

	res, err := f.engine.Crime(ctx, 1)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.EqualValues(t, -5, res.Amount)
	assert.EqualValues(t, 0, res.Balance, "balance must never go negative")
	assert.Zero(t, res.XP, "failed crimes grant no experience")

	res, err = f.engine.Crime(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Balance)
}

func TestForage_UnknownArea(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 5, nil)
	f.account(t, 1)

	_, err := f.engine.Forage(context.Background(), 1, "spelunk")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestForage_ItemDrops(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 6, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["dig"] = 0
		c.Forage["dig"] = []catalog.ActionDef{
			{ID: "mine", Name: "Mine", Min: 1, Max: 5, XP: 1, DropChance: 1, DropItem: "ore"},
		}
	})
	ctx := context.Background()
	f.account(t, 1)

	for _i := 0; _i < 3; _i++ {
		res, err := f.engine.Forage(ctx, 1, "dig")
		require.NoError(t, err)
		assert.Equal(t, "ore", res.ItemFound)
	}

	p, err := f.engine.Balance(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, p.Inventory["ore"])
}

func TestLevelUp_MultiLevelJump(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 7, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["work"] = 0
		c.Jobs = []catalog.ActionDef{
			{ID: "windfall", Name: "Windfall", Min: 1, Max: 1, XP: 2500},
		}
	})
	ctx := context.Background()
	f.account(t, 1)

	res, err := f.engine.Work(ctx, 1)
	require.NoError(t, err)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, 3, res.Level)
	assert.EqualValues(t, 500, res.Experience)
}

func TestBoost_DoublesActionCoins(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 8, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["work"] = 0
		c.Jobs = []catalog.ActionDef{
			{ID: "fixed", Name: "Fixed", Min: 100, Max: 100, XP: 10},
		}
	})
	ctx := context.Background()
	f.account(t, 1)

	res, err := f.engine.Work(ctx, 1)
	require.NoError(t, err)
	assert.False(t, res.Boosted)
	assert.EqualValues(t, 100, res.Amount)

	// Move the clock onto the bonus weekday.
	for f.clock.Weekday() != f.catalog.Tuning.Boost.Weekday {
		f.advance(24 * time.Hour)
	}

	res, err = f.engine.Work(ctx, 1)
	require.NoError(t, err)
	assert.True(t, res.Boosted)
	assert.EqualValues(t, 200, res.Amount)
	assert.EqualValues(t, 15, res.XP)
}

func TestAchievement_FirstShiftPaysOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 9, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["work"] = 0
	})
	ctx := context.Background()
	f.account(t, 1)

	res, err := f.engine.Work(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, res.Unlocked, "First Shift")

	for _i := 0; _i < 5; _i++ {
		res, err = f.engine.Work(ctx, 1)
		require.NoError(t, err)
		assert.NotContains(t, res.Unlocked, "First Shift", "unlocks must be idempotent")
	}

	achPayouts := 0
	for _, rec := range f.ledger.All() {
		if rec.Category == ledger.CategoryAchievement {
			achPayouts++
		}
	}
	assert.Equal(t, 1, achPayouts)
}

func TestGamble_BetLimits(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 10, nil)
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.Coinflip(ctx, 1, f.catalog.Games.MinBet-1, "heads")
	assert.ErrorIs(t, err, ErrInvalidBet)
	_, err = f.engine.Coinflip(ctx, 1, f.catalog.Games.MaxBet+1, "heads")
	assert.ErrorIs(t, err, ErrInvalidBet)
}

func TestGamble_InsufficientFunds(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 11, func(c *catalog.Catalog) {
		c.Tuning.StartingBalance = 20
	})
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.Coinflip(ctx, 1, 100, "heads")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestGamble_InvalidChoiceDoesNotConsumeCooldown(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 12, nil)
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.Coinflip(ctx, 1, 100, "rim")
	require.ErrorIs(t, err, games.ErrInvalidChoice)

	// The rejected wager must not have gated the next one.
	_, err = f.engine.Coinflip(ctx, 1, 100, "heads")
	assert.NoError(t, err)
}

func TestGamble_LedgerMatchesBalance(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 13, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["gamble"] = 0
	})
	ctx := context.Background()
	p := f.account(t, 1)

	for _i := 0; _i < 50; _i++ {
		_, err := f.engine.Dice(ctx, 1, 10, 3)
		require.NoError(t, err)
	}

	var net int64
	for _, rec := range f.ledger.All() {
		if rec.Category == ledger.CategoryGambleWin || rec.Category == ledger.CategoryGambleLoss {
			net += rec.Amount
		}
	}

	after, err := f.engine.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, p.Balance+net, after.Balance, "ledger must reconcile with the balance")
}

func TestGiveCoins_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 14, nil)
	ctx := context.Background()
	f.account(t, 1)
	f.account(t, 2)

	_, err := f.engine.GiveCoins(ctx, 1, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = f.engine.GiveCoins(ctx, 1, 2, -5)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = f.engine.GiveCoins(ctx, 1, 2, 1_000_000)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestGiveCoins_ConcurrentConservation(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 15, nil)
	ctx := context.Background()
	f.account(t, 1)
	f.account(t, 2)

	const (
		workers = 50
		amount  = int64(5)
	)

	var wg sync.WaitGroup
	for _i := 0; _i < workers; _i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.engine.GiveCoins(ctx, 1, 2, amount)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sender, err := f.engine.Balance(ctx, 1)
	require.NoError(t, err)
	receiver, err := f.engine.Balance(ctx, 2)
	require.NoError(t, err)

	start := f.catalog.Tuning.StartingBalance
	assert.Equal(t, start-workers*amount, sender.Balance)
	assert.Equal(t, start+workers*amount, receiver.Balance)
	assert.Equal(t, 2*start, sender.Balance+receiver.Balance, "coins must be conserved")
}

func TestVault_DepositWithdraw(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 16, nil)
	ctx := context.Background()
	f.account(t, 1)

	res, err := f.engine.Deposit(ctx, 1, 300)
	require.NoError(t, err)
	assert.EqualValues(t, 200, res.Balance)
	assert.EqualValues(t, 300, res.Vault)
	assert.EqualValues(t, f.catalog.Tuning.VaultPerLevel, res.Capacity)

	_, err = f.engine.Withdraw(ctx, 1, 500)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	res, err = f.engine.Withdraw(ctx, 1, 300)
	require.NoError(t, err)
	assert.EqualValues(t, 500, res.Balance)
	assert.EqualValues(t, 0, res.Vault)
}

func TestVault_CapacityScalesWithLevel(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 17, func(c *catalog.Catalog) {
		c.Tuning.StartingBalance = 10_000
		c.Tuning.VaultPerLevel = 1_000
	})
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.Deposit(ctx, 1, 1_001)
	assert.ErrorIs(t, err, ErrVaultCapacity)

	res, err := f.engine.Deposit(ctx, 1, 1_000)
	require.NoError(t, err)
	assert.EqualValues(t, 1_000, res.Vault)
}

func TestRob_FineCappedAtBalance(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 18, func(c *catalog.Catalog) {
		c.Tuning.StartingBalance = 50
		c.Tuning.Cooldowns["rob"] = 0
		c.Tuning.Rob.SuccessChance = 0
		c.Tuning.Rob.Penalty = 200
	})
	ctx := context.Background()
	f.account(t, 1)
	f.account(t, 2)

	res, err := f.engine.Rob(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.EqualValues(t, -50, res.Amount)
	assert.EqualValues(t, 0, res.RobberBalance)
}

func TestRob_StealsAtMostTheFraction(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 19, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["rob"] = 0
		c.Tuning.Rob.SuccessChance = 1
		c.Tuning.Rob.MaxFraction = 0.25
	})
	ctx := context.Background()
	f.account(t, 1)
	f.account(t, 2)

	victimBefore, err := f.engine.Balance(ctx, 2)
	require.NoError(t, err)

	res, err := f.engine.Rob(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Positive(t, res.Amount)
	assert.LessOrEqual(t, res.Amount, int64(float64(victimBefore.Balance)*0.25))
}

func TestRob_VaultedCoinsAreSafe(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 20, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["rob"] = 0
		c.Tuning.Rob.SuccessChance = 1
	})
	ctx := context.Background()
	f.account(t, 1)
	f.account(t, 2)

	_, err := f.engine.Deposit(ctx, 2, 500)
	require.NoError(t, err)

	res, err := f.engine.Rob(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.EqualValues(t, 0, res.Amount, "an empty wallet yields nothing even with the vault full")

	victim, err := f.engine.Balance(ctx, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 500, victim.Vault)
}

func TestMines_Protocol(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 21, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["gamble"] = 0
	})
	ctx := context.Background()
	f.account(t, 1)

	state, err := f.engine.MinesStart(ctx, 1, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 100, state.Payout, "multiplier starts at 1x")

	p, err := f.engine.Balance(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 400, p.Balance, "the wager is debited at start")

	_, err = f.engine.MinesStart(ctx, 1, 100)
	assert.ErrorIs(t, err, games.ErrSessionActive)

	_, err = f.engine.MinesCashOut(ctx, 1)
	assert.ErrorIs(t, err, games.ErrNoReveals)

	_, _, err = f.engine.MinesReveal(ctx, 1, 99)
	assert.ErrorIs(t, err, games.ErrTileOutOfRange)

	safe := safeTiles(t, f, 1)[0]
	state, outcome, err := f.engine.MinesReveal(ctx, 1, safe)
	require.NoError(t, err)
	require.Nil(t, outcome)
	assert.Equal(t, 1, state.Revealed)
	assert.Greater(t, state.Payout, int64(100))

	_, _, err = f.engine.MinesReveal(ctx, 1, safe)
	assert.ErrorIs(t, err, games.ErrTileRevealed)

	cashed, err := f.engine.MinesCashOut(ctx, 1)
	require.NoError(t, err)
	assert.Positive(t, cashed.Amount)
	assert.EqualValues(t, 400+100+cashed.Amount, cashed.Balance)

	_, err = f.engine.MinesCashOut(ctx, 1)
	assert.ErrorIs(t, err, games.ErrSessionNotFound, "cash-out destroys the session")
}

func TestMines_HazardForfeitsWager(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 22, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["gamble"] = 0
	})
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.MinesStart(ctx, 1, 100)
	require.NoError(t, err)

	s, err := f.engine.Sessions().Get(1)
	require.NoError(t, err)
	hazard := s.HazardTiles()[0]

	_, outcome, err := f.engine.MinesReveal(ctx, 1, hazard)
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.True(t, outcome.Hazard)
	assert.EqualValues(t, -100, outcome.Amount)
	assert.Len(t, outcome.HazardTiles, f.catalog.Games.Mines.Hazards)

	_, err = f.engine.MinesCashOut(ctx, 1)
	assert.ErrorIs(t, err, games.ErrSessionNotFound, "a hazard destroys the session")

	p, err := f.engine.Balance(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 400, p.Balance, "the wager stays forfeited")
}

func TestMines_InsufficientFundsReleasesSession(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 23, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["gamble"] = 0
		c.Tuning.StartingBalance = 50
	})
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.MinesStart(ctx, 1, 100)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// The reserved slot must have been released.
	_, err = f.engine.MinesStart(ctx, 1, 50)
	assert.NoError(t, err)
}

func TestMines_ConcurrentCashOutSettlesOnce(t *testing.T) {
	t.Parallel()

	f := slowFixture(t, 26, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["gamble"] = 0
	})
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.MinesStart(ctx, 1, 100)
	require.NoError(t, err)

	_, outcome, err := f.engine.MinesReveal(ctx, 1, safeTiles(t, f, 1)[0])
	require.NoError(t, err)
	require.Nil(t, outcome)

	const workers = 4
	results := make(chan error, workers)
	for _i := 0; _i < workers; _i++ {
		go func() {
			_, err := f.engine.MinesCashOut(ctx, 1)
			results <- err
		}()
	}

	settled := 0
	for _i := 0; _i < workers; _i++ {
		if err := <-results; err == nil {
			settled++
		} else {
			assert.ErrorIs(t, err, games.ErrSessionNotFound)
		}
	}
	assert.Equal(t, 1, settled, "exactly one cash-out may settle")

	p, err := f.engine.Balance(ctx, 1)
	require.NoError(t, err)
	payout := int64(math.Floor(100 * f.catalog.Games.Mines.Base))
	assert.Equal(t, f.catalog.Tuning.StartingBalance-100+payout, p.Balance)

	var net int64
	for _, rec := range f.ledger.All() {
		net += rec.Amount
	}
	assert.Equal(t, p.Balance, net, "ledger must reconcile with the balance")
}

func TestMines_RevealAndCashOutSerialize(t *testing.T) {
	t.Parallel()

	f := slowFixture(t, 27, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["gamble"] = 0
	})
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.MinesStart(ctx, 1, 100)
	require.NoError(t, err)

	tiles := safeTiles(t, f, 1)
	_, outcome, err := f.engine.MinesReveal(ctx, 1, tiles[0])
	require.NoError(t, err)
	require.Nil(t, outcome)

	var (
		wg        sync.WaitGroup
		revealErr error
		cashed    MinesOutcome
		cashErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _, revealErr = f.engine.MinesReveal(ctx, 1, tiles[1])
	}()
	go func() {
		defer wg.Done()
		cashed, cashErr = f.engine.MinesCashOut(ctx, 1)
	}()
	wg.Wait()

	require.NoError(t, cashErr, "the cash-out must settle")

	base := f.catalog.Games.Mines.Base
	reveals := 1
	if revealErr == nil {
		// The reveal got in before the settlement and raised the multiplier.
		reveals = 2
	} else {
		// The settlement won; the late reveal saw no session.
		assert.ErrorIs(t, revealErr, games.ErrSessionNotFound)
	}

	payout := int64(math.Floor(100 * math.Pow(base, float64(reveals))))
	assert.Equal(t, payout-100, cashed.Amount)

	p, err := f.engine.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, f.catalog.Tuning.StartingBalance-100+payout, p.Balance)
}

func TestMines_HazardRescueOnBoostDay(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 28, func(c *catalog.Catalog) {
		c.Tuning.Cooldowns["gamble"] = 0
		c.Tuning.Boost.Weekday = quietDay.Weekday()
		c.Tuning.Boost.RescueChance = 1
	})
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.MinesStart(ctx, 1, 100)
	require.NoError(t, err)

	s, err := f.engine.Sessions().Get(1)
	require.NoError(t, err)
	hazard := s.HazardTiles()[0]

	_, outcome, err := f.engine.MinesReveal(ctx, 1, hazard)
	require.NoError(t, err)
	require.NotNil(t, outcome)
	assert.True(t, outcome.Hazard)
	assert.True(t, outcome.Rescued)
	assert.EqualValues(t, 25, outcome.Amount, "a quarter of the wager")
	assert.EqualValues(t, 525, outcome.Balance)

	_, err = f.engine.MinesCashOut(ctx, 1)
	assert.ErrorIs(t, err, games.ErrSessionNotFound, "a hazard destroys the session even when rescued")
}

func TestVelocityScreen_RejectsAndConsumesCooldown(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 24, func(c *catalog.Catalog) {
		c.Tuning.Integrity.RapidThreshold = 2
		c.Tuning.Integrity.RapidWindow = catalog.Duration(time.Minute)
		c.Tuning.Cooldowns["work"] = catalog.Duration(time.Second)
	})
	ctx := context.Background()
	f.account(t, 1)

	_, err := f.engine.Work(ctx, 1)
	require.NoError(t, err)
	f.advance(time.Second)
	_, err = f.engine.Work(ctx, 1)
	require.NoError(t, err)

	f.advance(time.Second)
	_, err = f.engine.Work(ctx, 1)
	require.ErrorIs(t, err, ErrRejected)

	// The rejected attempt still stamped the gate.
	_, err = f.engine.Work(ctx, 1)
	var cdErr *CooldownError
	assert.True(t, errors.As(err, &cdErr))
}

// safeTiles lists the tiles outside the active session's hazard layout.
func safeTiles(t *testing.T, f *fixture, accountID uint64) []int {
	t.Helper()

	s, err := f.engine.Sessions().Get(accountID)
	require.NoError(t, err)

	hazards := map[int]struct{}{}
	for _, tile := range s.HazardTiles() {
		hazards[tile] = struct{}{}
	}

	var safe []int
	for tile := 0; tile < f.catalog.Games.Mines.GridSize; tile++ {
		if _, bad := hazards[tile]; !bad {
			safe = append(safe, tile)
		}
	}
	require.NotEmpty(t, safe, "no safe tile in grid")

	return safe
}

// slowAccounts widens the store's mutation window so interleavings that need
// a slow commit actually occur.
type slowAccounts struct {
	accounts.Accounts
	delay time.Duration
}

func (s slowAccounts) Mutate(ctx context.Context, id uint64, fn accounts.Mutator) (accounts.Account, error) {
	time.Sleep(s.delay)
	return s.Accounts.Mutate(ctx, id, fn)
}

// slowFixture backs the engine with a store whose commits take a while,
// mimicking a durable backend.
func slowFixture(t *testing.T, seed int64, tweak func(*catalog.Catalog)) *fixture {
	t.Helper()

	cat := catalog.Default()
	cat.Tuning.Integrity.RapidThreshold = 1_000_000
	if tweak != nil {
		tweak(cat)
	}
	require.NoError(t, cat.Validate())

	clock := quietDay
	recs := ledmem.New()
	store := slowAccounts{Accounts: accmem.New(recs), delay: 5 * time.Millisecond}

	e := New(store, recs, cat, Options{
		Rand: rng.NewSeeded(seed),
		Now:  func() time.Time { return clock },
	})

	return &fixture{engine: e, ledger: recs, catalog: cat, clock: &clock}
}

func TestHistory_UnknownAccount(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 25, nil)

	_, err := f.engine.History(context.Background(), 404, 10)
	assert.Error(t, err)
}
