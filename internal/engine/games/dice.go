package games

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// Dice resolves an exact-number guess against one die roll.
func Dice(r rng.RNG, p catalog.DiceParams, bet int64, guess int) (Result, error) {
	if guess < 1 || guess > p.Sides {
		return Result{}, ErrInvalidChoice
	}

	rolled := r.Intn(p.Sides) + 1

	details := map[string]any{"rolled": rolled}
	if rolled != guess {
		return loss(bet, details), nil
	}

	return win(bet, p.ExactMultiplier, details), nil
}
