package games

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// Plinko drops a ball onto the center-weighted slot distribution and pays
// the landing slot's multiplier from the chosen risk tier's table.
func Plinko(r rng.RNG, p catalog.PlinkoParams, bet int64, tier string) (Result, error) {
	table, ok := p.Tables[tier]
	if !ok {
		return Result{}, ErrInvalidChoice
	}

	slot := weightedIndex(r, p.Weights)
	mult := table[slot]

	details := map[string]any{"slot": slot, "multiplier": mult}

	payout := gross(bet, mult)
	if payout <= bet {
		if payout == bet {
			return push(details), nil
		}
		// Sub-1x slots return part of the wager.
		return Result{Amount: payout - bet, Details: details}, nil
	}

	return win(bet, mult, details), nil
}

// weightedIndex picks an index with probability proportional to its weight.
func weightedIndex(r rng.RNG, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}

	roll := r.Intn(total)
	cum := 0
	for i, w := range weights {
		cum += w
		if roll < cum {
			return i
		}
	}

	return len(weights) - 1
}
