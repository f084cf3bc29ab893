package games

import (
	"math"

	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// Crash draws a crash point from the bucketed distribution (heavily weighted
// toward low multipliers) and pays the player's chosen cash-out multiplier
// when it is at or below the crash point.
func Crash(r rng.RNG, p catalog.CrashParams, bet int64, cashOut float64) (Result, error) {
	if cashOut <= 1 || math.IsNaN(cashOut) || math.IsInf(cashOut, 0) {
		return Result{}, ErrInvalidChoice
	}

	point := crashPoint(r, p)
	details := map[string]any{
		"crash_point": math.Floor(point*100) / 100,
		"cash_out":    cashOut,
	}

	if cashOut > point {
		return loss(bet, details), nil
	}

	return win(bet, cashOut, details), nil
}

// crashPoint picks a bucket by cumulative probability, then a uniform point
// within it.
func crashPoint(r rng.RNG, p catalog.CrashParams) float64 {
	roll := r.Float64()

	var cum float64
	for _, b := range p.Buckets {
		cum += b.P
		if roll < cum {
			return b.Min + r.Float64()*(b.Max-b.Min)
		}
	}

	// Float drift can leave the roll a hair past the final cumulative sum.
	last := p.Buckets[len(p.Buckets)-1]

	return last.Min + r.Float64()*(last.Max-last.Min)
}
