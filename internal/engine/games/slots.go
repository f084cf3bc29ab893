package games

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// Slots draws three independent reel symbols. Three of a kind pays the
// symbol's own multiplier, a pair pays the flat low multiplier, no match
// pays nothing.
func Slots(r rng.RNG, p catalog.SlotsParams, bet int64) Result {
	reels := [3]catalog.SlotSymbol{}
	names := make([]string, 3)
	for i := range reels {
		reels[i] = p.Symbols[r.Intn(len(p.Symbols))]
		names[i] = reels[i].Symbol
	}

	details := map[string]any{"reels": names}

	switch {
	case names[0] == names[1] && names[1] == names[2]:
		return win(bet, reels[0].Multiplier, details)
	case names[0] == names[1] || names[1] == names[2] || names[0] == names[2]:
		return win(bet, p.PairMultiplier, details)
	default:
		return loss(bet, details)
	}
}
