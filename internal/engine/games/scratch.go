package games

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// Scratch resolves a ticket against the weighted tier table.
func Scratch(r rng.RNG, p catalog.ScratchParams, bet int64) Result {
	total := 0
	for _, t := range p.Tiers {
		if t.Weight > 0 {
			total += t.Weight
		}
	}

	roll := r.Intn(total)
	cum := 0

	var tier catalog.ScratchTier
	for _, t := range p.Tiers {
		if t.Weight <= 0 {
			continue
		}
		cum += t.Weight
		if roll < cum {
			tier = t
			break
		}
	}

	details := map[string]any{"tier": tier.Name, "multiplier": tier.Multiplier}

	switch {
	case tier.Multiplier == 0:
		return loss(bet, details)
	case tier.Multiplier == 1:
		return push(details)
	default:
		return win(bet, tier.Multiplier, details)
	}
}
