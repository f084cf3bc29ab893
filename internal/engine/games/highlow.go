package games

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

const (
	highLowRanks = 13
	highLowPivot = 7
)

// HighLow draws one card rank (1..13) against a pivot of 7. "high" wins on
// 8 and above, "low" wins on 6 and below, and the pivot itself always loses.
func HighLow(r rng.RNG, p catalog.HighLowParams, bet int64, guess string) (Result, error) {
	if guess != "high" && guess != "low" {
		return Result{}, ErrInvalidChoice
	}

	card := r.Intn(highLowRanks) + 1
	details := map[string]any{"card": card}

	won := (guess == "high" && card > highLowPivot) || (guess == "low" && card < highLowPivot)
	if !won {
		return loss(bet, details), nil
	}

	return win(bet, p.Multiplier, details), nil
}
