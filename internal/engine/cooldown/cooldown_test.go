package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheck_BlocksWithinInterval(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	stamps := map[string]time.Time{}

	st := Check(stamps, "work", time.Minute, now)
	assert.True(t, st.Allowed, "first invocation must pass")

	Stamp(stamps, "work", now)

	st = Check(stamps, "work", time.Minute, now.Add(30*time.Second))
	assert.False(t, st.Allowed)
	assert.Equal(t, 30*time.Second, st.Remaining)

	st = Check(stamps, "work", time.Minute, now.Add(time.Minute))
	assert.True(t, st.Allowed, "exactly one interval later must pass")
}

func TestCheck_ExactlyOncePerInterval(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	stamps := map[string]time.Time{}
	interval := 10 * time.Second

	allowedCount := 0
	for i := 0; i < 20; i++ {
		at := now.Add(time.Duration(i) * time.Second)
		if st := Check(stamps, "fish", interval, at); st.Allowed {
			allowedCount++
			Stamp(stamps, "fish", at)
		}
	}

	// 20 seconds of one-second polls against a 10s interval: t=0 and t=10.
	assert.Equal(t, 2, allowedCount)
}

func TestCheck_FamiliesIndependent(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stamps := map[string]time.Time{}

	Stamp(stamps, "work", now)

	assert.False(t, Check(stamps, "work", time.Hour, now).Allowed)
	assert.True(t, Check(stamps, "crime", time.Hour, now).Allowed)
}

func TestCheck_ZeroIntervalAlwaysAllowed(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stamps := map[string]time.Time{"transfer": now}

	assert.True(t, Check(stamps, "transfer", 0, now).Allowed)
}
