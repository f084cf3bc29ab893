package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidBet        = errors.New("bet outside table limits")
	ErrVaultCapacity     = errors.New("vault capacity exceeded")
	ErrUnknownAction     = errors.New("unknown action")

	// ErrRejected is the only error surfaced for integrity screening
	// failures. The concrete reason goes to the audit channel so the
	// detection heuristics stay opaque to callers.
	ErrRejected = errors.New("request rejected")
)

// CooldownError reports a gated action family and the time left on the gate.
type CooldownError struct {
	Family    string
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("action %q on cooldown for %s", e.Family, e.Remaining.Round(time.Second))
}
