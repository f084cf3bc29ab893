package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	override := `
games:
  min_bet: 5
  max_bet: 500
tuning:
  level_threshold: 250
  cooldowns:
    work: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.EqualValues(t, 5, c.Games.MinBet)
	assert.EqualValues(t, 500, c.Games.MaxBet)
	assert.EqualValues(t, 250, c.Tuning.LevelThreshold)
	assert.Equal(t, 30*time.Second, c.Cooldown("work"))
	// Untouched sections keep their defaults.
	assert.NotEmpty(t, c.Jobs)
	assert.Equal(t, 1.95, c.Games.Coinflip.Multiplier)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Parallel()

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	for tier, table := range c.Games.Plinko.Tables {
		assert.Len(t, table, len(c.Games.Plinko.Weights), "tier %s", tier)
	}
}

func TestValidate_RejectsBrokenTables(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Games.Crash.Buckets[0].P = 0.9 // mass no longer sums to 1
	assert.Error(t, c.Validate())

	c = Default()
	c.Jobs = nil
	assert.Error(t, c.Validate())

	c = Default()
	c.Games.Mines.Hazards = c.Games.Mines.GridSize
	assert.Error(t, c.Validate())

	c = Default()
	c.Crimes[0].SuccessChance = 1.3
	assert.Error(t, c.Validate())
}
