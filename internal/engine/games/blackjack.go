package games

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

const (
	blackjackTarget = 21
	standAt         = 17
)

// Blackjack plays one simplified round: both hands auto-hit to 17 or more,
// closest to 21 without busting wins. A two-card 21 pays the natural
// multiplier, a push refunds the bet.
func Blackjack(r rng.RNG, p catalog.BlackjackParams, bet int64) Result {
	player, playerCards := drawHand(r)
	dealer, dealerCards := drawHand(r)

	details := map[string]any{
		"player": player, "player_cards": playerCards,
		"dealer": dealer, "dealer_cards": dealerCards,
	}

	playerBust := player > blackjackTarget
	dealerBust := dealer > blackjackTarget

	switch {
	case playerBust:
		return loss(bet, details)
	case dealerBust || player > dealer:
		if player == blackjackTarget && playerCards == 2 {
			return win(bet, p.NaturalMultiplier, details)
		}
		return win(bet, p.WinMultiplier, details)
	case player == dealer:
		return push(details)
	default:
		return loss(bet, details)
	}
}

// drawHand deals cards until the stand threshold, counting aces as 11 and
// demoting them to 1 when that would bust.
func drawHand(r rng.RNG) (total int, cards int) {
	aces := 0

	for total < standAt {
		rank := r.Intn(13) + 1 // 1=ace, 11..13 face cards
		cards++

		switch {
		case rank == 1:
			aces++
			total += 11
		case rank > 10:
			total += 10
		default:
			total += rank
		}

		for total > blackjackTarget && aces > 0 {
			total -= 10
			aces--
		}
	}

	return total, cards
}
