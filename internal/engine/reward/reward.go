// Package reward resolves catalog entries into concrete outcomes: uniform
// selection across a family's table, payout rolls within the entry's bounds,
// success/failure rolls for risk actions, and independent item-drop trials
// for forage locations.
package reward

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// Pick selects uniformly from the table; every entry is equally likely.
func Pick(r rng.RNG, defs []catalog.ActionDef) catalog.ActionDef {
	return defs[r.Intn(len(defs))]
}

// Payout draws a uniform coin reward in [def.Min, def.Max].
func Payout(r rng.RNG, def catalog.ActionDef) int64 {
	return rng.Between(r, def.Min, def.Max)
}

// RiskOutcome is the result of a success/failure roll. Amount is signed: a
// failure carries the (capped) penalty as a negative value.
type RiskOutcome struct {
	Success bool
	Amount  int64
}

// Roll adjudicates a risk action. On failure the charge is capped at the
// account's balance so it can never go negative.
func Roll(r rng.RNG, def catalog.ActionDef, balance int64) RiskOutcome {
	if rng.Chance(r, def.SuccessChance) {
		return RiskOutcome{Success: true, Amount: Payout(r, def)}
	}

	penalty := def.Penalty
	if penalty > balance {
		penalty = balance
	}

	return RiskOutcome{Amount: -penalty}
}

// Drop is the result of a forage item trial.
type Drop struct {
	Found bool
	Item  string
}

// DropRoll runs the entry's independent Bernoulli item trial.
func DropRoll(r rng.RNG, def catalog.ActionDef) Drop {
	if def.DropItem == "" || !rng.Chance(r, def.DropChance) {
		return Drop{}
	}

	return Drop{Found: true, Item: def.DropItem}
}
