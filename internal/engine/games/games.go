// Package games implements the per-game payout calculators. Every game is a
// pure function of an injected random source, the catalog parameters, and
// the wager; account state, cooldowns, boosts, and ledger commits are the
// orchestrator's business. Multipliers are gross, so a winning bet's profit
// is floor(bet*multiplier) - bet and a losing bet's is -bet.
package games

import (
	"errors"
)

var (
	// ErrInvalidChoice rejects game parameters outside the sample space
	// (unknown coin side, dice guess off the die, bad roulette bet, ...).
	ErrInvalidChoice = errors.New("invalid game choice")

	ErrSessionActive   = errors.New("game session already active")
	ErrSessionNotFound = errors.New("no active game session")
	ErrTileRevealed    = errors.New("tile already revealed")
	ErrTileOutOfRange  = errors.New("tile index out of range")
	ErrNoReveals       = errors.New("cash-out requires at least one revealed tile")
)

// Result is a resolved wager. Amount is the signed profit: positive on a
// win, -bet on a loss, zero on a push.
type Result struct {
	Win     bool
	Amount  int64
	Details map[string]any
}

func win(bet int64, multiplier float64, details map[string]any) Result {
	return Result{Win: true, Amount: gross(bet, multiplier) - bet, Details: details}
}

func loss(bet int64, details map[string]any) Result {
	return Result{Amount: -bet, Details: details}
}

func push(details map[string]any) Result {
	return Result{Win: true, Amount: 0, Details: details}
}

// gross is the total returned to the player for a winning bet.
func gross(bet int64, multiplier float64) int64 {
	return int64(float64(bet) * multiplier)
}
