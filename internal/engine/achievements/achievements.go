// Package achievements evaluates unlock predicates against account state.
//
// Definitions (id, name, reward) come from the catalog; the predicate for
// each id is registered here. A definition without a registered predicate,
// like any definition marked manual, never unlocks through evaluation and
// exists as a display badge.
package achievements

import (
	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/internal/repos/accounts"
)

// Stat counter names bumped by the engine and read by predicates.
const (
	StatWorkCount    = "work_count"
	StatCrimeCount   = "crime_count"
	StatForageCount  = "forage_count"
	StatGambleCount  = "gamble_count"
	StatGambleWins   = "gamble_wins"
	StatTotalWagered = "total_wagered"
	StatTransfers    = "transfers_sent"
)

// Predicate reports whether the account qualifies for an unlock.
type Predicate func(a *accounts.Account) bool

var predicates = map[string]Predicate{
	"first_shift": func(a *accounts.Account) bool { return a.Stat(StatWorkCount) >= 1 },
	"workaholic":  func(a *accounts.Account) bool { return a.Stat(StatWorkCount) >= 100 },
	"outlaw":      func(a *accounts.Account) bool { return a.Stat(StatCrimeCount) >= 50 },
	"high_roller": func(a *accounts.Account) bool { return a.Stat(StatTotalWagered) >= 50_000 },
	"lucky_streak": func(a *accounts.Account) bool {
		return a.Stat(StatGambleWins) >= 50
	},
	"millionaire": func(a *accounts.Account) bool { return a.Balance >= 1_000_000 },
	"safe_keeper": func(a *accounts.Account) bool { return a.Vault >= 10_000 },
	"pack_rat":    func(a *accounts.Account) bool { return a.InventoryTotal() >= 100 },
	"seasoned":    func(a *accounts.Account) bool { return a.Level >= 10 },
}

// Evaluate scans the full table and returns the definitions the account now
// qualifies for but has not unlocked. It mutates nothing, so running it
// twice without a state change returns the same result; the caller records
// unlocks and pays rewards, making the overall step idempotent.
func Evaluate(a *accounts.Account, defs []catalog.AchievementDef) []catalog.AchievementDef {
	var unlocked []catalog.AchievementDef

	for _, def := range defs {
		if def.Manual || a.HasAchievement(def.ID) {
			continue
		}

		pred, ok := predicates[def.ID]
		if !ok || !pred(a) {
			continue
		}

		unlocked = append(unlocked, def)
	}

	return unlocked
}
