package games

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

const wheelSlots = 37 // 0..36

var redNumbers = map[int]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {}, 12: {}, 14: {}, 16: {}, 18: {},
	19: {}, 21: {}, 23: {}, 25: {}, 27: {}, 30: {}, 32: {}, 34: {}, 36: {},
}

// Roulette spins a single-zero wheel. Outside bets (red/black/odd/even)
// lose on zero; a straight bet on any number 0..36 pays the high
// multiplier.
func Roulette(r rng.RNG, p catalog.RouletteParams, bet int64, betType string, number int) (Result, error) {
	switch betType {
	case "red", "black", "odd", "even":
	case "straight":
		if number < 0 || number >= wheelSlots {
			return Result{}, ErrInvalidChoice
		}
	default:
		return Result{}, ErrInvalidChoice
	}

	landed := r.Intn(wheelSlots)
	details := map[string]any{"landed": landed, "color": colorOf(landed)}

	var (
		won  bool
		mult float64
	)

	switch betType {
	case "red":
		won, mult = colorOf(landed) == "red", p.ColorMultiplier
	case "black":
		won, mult = colorOf(landed) == "black", p.ColorMultiplier
	case "odd":
		won, mult = landed != 0 && landed%2 == 1, p.ParityMultiplier
	case "even":
		won, mult = landed != 0 && landed%2 == 0, p.ParityMultiplier
	case "straight":
		won, mult = landed == number, p.StraightMultiplier
	}

	if !won {
		return loss(bet, details), nil
	}

	return win(bet, mult, details), nil
}

func colorOf(n int) string {
	if n == 0 {
		return "green"
	}
	if _, ok := redNumbers[n]; ok {
		return "red"
	}

	return "black"
}
