// Package cooldown gates repeat invocations of an action family.
package cooldown

import "time"

// Status is the result of a gate check.
type Status struct {
	Allowed   bool
	Remaining time.Duration
}

// Check compares the family's last stamp against the interval. It never
// mutates; the caller stamps once the action's outcome is final, so the
// attempt consumes the cooldown even when a downstream validation rejects
// it.
func Check(stamps map[string]time.Time, family string, interval time.Duration, now time.Time) Status {
	if interval <= 0 {
		return Status{Allowed: true}
	}

	last, ok := stamps[family]
	if !ok {
		return Status{Allowed: true}
	}

	elapsed := now.Sub(last)
	if elapsed < interval {
		return Status{Remaining: interval - elapsed}
	}

	return Status{Allowed: true}
}

// Stamp records the invocation time for the family.
func Stamp(stamps map[string]time.Time, family string, now time.Time) {
	stamps[family] = now
}
