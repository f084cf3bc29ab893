package catalog

import "fmt"

// Games holds per-game payout parameters. Multipliers are gross: a winning
// bet returns bet*multiplier, so the player's profit is bet*(multiplier-1).
type Games struct {
	MinBet int64 `yaml:"min_bet"`
	MaxBet int64 `yaml:"max_bet"`

	Coinflip  CoinflipParams  `yaml:"coinflip"`
	Dice      DiceParams      `yaml:"dice"`
	Roulette  RouletteParams  `yaml:"roulette"`
	HighLow   HighLowParams   `yaml:"highlow"`
	Slots     SlotsParams     `yaml:"slots"`
	Crash     CrashParams     `yaml:"crash"`
	Plinko    PlinkoParams    `yaml:"plinko"`
	Lottery   LotteryParams   `yaml:"lottery"`
	Mines     MinesParams     `yaml:"mines"`
	Blackjack BlackjackParams `yaml:"blackjack"`
	Scratch   ScratchParams   `yaml:"scratch"`
}

type CoinflipParams struct {
	Multiplier float64 `yaml:"multiplier"`
}

type DiceParams struct {
	Sides           int     `yaml:"sides"`
	ExactMultiplier float64 `yaml:"exact_multiplier"`
}

type RouletteParams struct {
	ColorMultiplier    float64 `yaml:"color_multiplier"`
	ParityMultiplier   float64 `yaml:"parity_multiplier"`
	StraightMultiplier float64 `yaml:"straight_multiplier"`
}

type HighLowParams struct {
	Multiplier float64 `yaml:"multiplier"`
}

// SlotSymbol pairs a reel symbol with its three-of-a-kind multiplier.
type SlotSymbol struct {
	Symbol     string  `yaml:"symbol"`
	Multiplier float64 `yaml:"multiplier"`
}

type SlotsParams struct {
	Symbols        []SlotSymbol `yaml:"symbols"`
	PairMultiplier float64      `yaml:"pair_multiplier"`
}

// CrashBucket maps a slice of probability mass to a crash-point range
// [Min, Max).
type CrashBucket struct {
	P   float64 `yaml:"p"`
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type CrashParams struct {
	Buckets []CrashBucket `yaml:"buckets"`
}

// PlinkoParams: Weights is the landing distribution over slots (center
// weighted); Tables maps a risk tier to a multiplier per slot.
type PlinkoParams struct {
	Weights []int                `yaml:"weights"`
	Tables  map[string][]float64 `yaml:"tables"`
}

type LotteryParams struct {
	NumberRange     int             `yaml:"number_range"`
	Picks           int             `yaml:"picks"`
	MatchMultiplier map[int]float64 `yaml:"match_multiplier"`
}

type MinesParams struct {
	GridSize   int      `yaml:"grid_size"`
	Hazards    int      `yaml:"hazards"`
	Base       float64  `yaml:"base"`
	SessionTTL Duration `yaml:"session_ttl"`
}

type BlackjackParams struct {
	WinMultiplier     float64 `yaml:"win_multiplier"`
	NaturalMultiplier float64 `yaml:"natural_multiplier"`
}

// ScratchTier is a weighted scratch-ticket outcome.
type ScratchTier struct {
	Name       string  `yaml:"name"`
	Multiplier float64 `yaml:"multiplier"`
	Weight     int     `yaml:"weight"`
}

type ScratchParams struct {
	Tiers []ScratchTier `yaml:"tiers"`
}

func (g *Games) validate() error {
	if g.MinBet <= 0 || g.MaxBet < g.MinBet {
		return fmt.Errorf("catalog: invalid bet bounds [%d,%d]", g.MinBet, g.MaxBet)
	}
	if g.Dice.Sides < 2 {
		return fmt.Errorf("catalog: dice needs at least 2 sides")
	}
	if len(g.Slots.Symbols) < 2 {
		return fmt.Errorf("catalog: slots needs at least 2 symbols")
	}

	var mass float64
	for _, b := range g.Crash.Buckets {
		if b.Max <= b.Min || b.Min < 1 {
			return fmt.Errorf("catalog: crash bucket [%v,%v) invalid", b.Min, b.Max)
		}
		mass += b.P
	}
	if mass < 0.999 || mass > 1.001 {
		return fmt.Errorf("catalog: crash bucket probabilities sum to %v, want 1", mass)
	}

	for tier, table := range g.Plinko.Tables {
		if len(table) != len(g.Plinko.Weights) {
			return fmt.Errorf("catalog: plinko tier %q has %d multipliers for %d slots", tier, len(table), len(g.Plinko.Weights))
		}
	}

	if g.Lottery.Picks <= 0 || g.Lottery.NumberRange < g.Lottery.Picks {
		return fmt.Errorf("catalog: lottery range %d cannot fit %d picks", g.Lottery.NumberRange, g.Lottery.Picks)
	}

	if g.Mines.GridSize <= 1 || g.Mines.Hazards <= 0 || g.Mines.Hazards >= g.Mines.GridSize {
		return fmt.Errorf("catalog: mines grid %d with %d hazards invalid", g.Mines.GridSize, g.Mines.Hazards)
	}
	if g.Mines.Base <= 1 {
		return fmt.Errorf("catalog: mines base multiplier must exceed 1")
	}

	if len(g.Scratch.Tiers) == 0 {
		return fmt.Errorf("catalog: scratch needs at least one tier")
	}

	return nil
}
