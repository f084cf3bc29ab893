// Package level converts accumulated experience into level increments.
package level

// Resolve consumes experience against the level-up threshold until no
// further increment is eligible, so a single large grant can jump several
// levels in one call. Each level costs the same threshold amount: 2500 xp at
// level 1 with a 1000 threshold resolves to level 3 with 500 remaining.
func Resolve(lvl int, xp int64, threshold int64) (int, int64) {
	if lvl < 1 {
		lvl = 1
	}
	if threshold <= 0 {
		return lvl, xp
	}

	for xp >= threshold {
		xp -= threshold
		lvl++
	}

	return lvl, xp
}
