package games

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// Coinflip resolves a heads/tails wager against a fair flip. The sub-2x
// multiplier carries the house edge.
func Coinflip(r rng.RNG, p catalog.CoinflipParams, bet int64, side string) (Result, error) {
	if side != "heads" && side != "tails" {
		return Result{}, ErrInvalidChoice
	}

	landed := "heads"
	if r.Intn(2) == 1 {
		landed = "tails"
	}

	details := map[string]any{"landed": landed}
	if landed != side {
		return loss(bet, details), nil
	}

	return win(bet, p.Multiplier, details), nil
}
