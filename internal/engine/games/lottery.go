package games

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// Lottery checks the player's picks against a draw without replacement.
// Only high match counts pay (per the configured step function); anything
// below the lowest paying count loses the whole bet.
func Lottery(r rng.RNG, p catalog.LotteryParams, bet int64, picks []int) (Result, error) {
	if len(picks) != p.Picks {
		return Result{}, ErrInvalidChoice
	}

	chosen := make(map[int]struct{}, len(picks))
	for _, n := range picks {
		if n < 1 || n > p.NumberRange {
			return Result{}, ErrInvalidChoice
		}
		if _, dup := chosen[n]; dup {
			return Result{}, ErrInvalidChoice
		}
		chosen[n] = struct{}{}
	}

	drawn := drawWithoutReplacement(r, p.NumberRange, p.Picks)

	matches := 0
	for _, n := range drawn {
		if _, ok := chosen[n]; ok {
			matches++
		}
	}

	details := map[string]any{"drawn": drawn, "matches": matches}

	mult, pays := p.MatchMultiplier[matches]
	if !pays {
		return loss(bet, details), nil
	}

	return win(bet, mult, details), nil
}

// drawWithoutReplacement picks count distinct numbers from 1..rangeMax via
// a partial Fisher-Yates shuffle.
func drawWithoutReplacement(r rng.RNG, rangeMax, count int) []int {
	pool := make([]int, rangeMax)
	for i := range pool {
		pool[i] = i + 1
	}

	for i := 0; i < count; i++ {
		j := i + r.Intn(rangeMax-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:count]
}
