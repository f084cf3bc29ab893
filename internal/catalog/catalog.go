// Package catalog holds the static game-balance tables: action definitions,
// achievement definitions, gambling parameters, and engine tuning. Tables are
// compiled-in defaults optionally overridden by a yaml file, so tests can run
// against small synthetic catalogs.
package catalog

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so yaml values can be written as "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}

	*d = Duration(parsed)

	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// ActionDef is one immutable catalog entry. Min/Max bound the coin reward,
// XP is the experience grant. Risk actions carry SuccessChance and Penalty;
// forage locations carry an independent item-drop chance.
type ActionDef struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Min           int64   `yaml:"min"`
	Max           int64   `yaml:"max"`
	XP            int64   `yaml:"xp"`
	SuccessChance float64 `yaml:"success_chance"`
	Penalty       int64   `yaml:"penalty"`
	DropChance    float64 `yaml:"drop_chance"`
	DropItem      string  `yaml:"drop_item"`
}

// AchievementDef is pure data; unlock predicates are registered by ID in the
// achievements package. Manual entries are display badges that can only be
// granted administratively.
type AchievementDef struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Reward int64  `yaml:"reward"`
	Manual bool   `yaml:"manual"`
}

// Boost configures the recurring bonus window.
type Boost struct {
	Weekday        time.Weekday `yaml:"weekday"`
	CoinMultiplier float64      `yaml:"coin_multiplier"`
	XPMultiplier   float64      `yaml:"xp_multiplier"`
	RescueChance   float64      `yaml:"rescue_chance"`
	RescueFraction float64      `yaml:"rescue_fraction"`
}

// Integrity bounds for the anti-dupe validator.
type Integrity struct {
	MaxItemQuantity     int64    `yaml:"max_item_quantity"`
	MaxPurchaseQuantity int64    `yaml:"max_purchase_quantity"`
	RapidWindow         Duration `yaml:"rapid_window"`
	RapidThreshold      int      `yaml:"rapid_threshold"`
}

// Rob configures account-vs-account theft.
type Rob struct {
	SuccessChance float64 `yaml:"success_chance"`
	MaxFraction   float64 `yaml:"max_fraction"`
	Penalty       int64   `yaml:"penalty"`
}

// Tuning collects engine-wide constants.
type Tuning struct {
	StartingBalance int64               `yaml:"starting_balance"`
	LevelThreshold  int64               `yaml:"level_threshold"`
	VaultPerLevel   int64               `yaml:"vault_per_level"`
	Cooldowns       map[string]Duration `yaml:"cooldowns"`
	Boost           Boost               `yaml:"boost"`
	Rob             Rob                 `yaml:"rob"`
	Integrity       Integrity           `yaml:"integrity"`
}

// Catalog is the full static configuration consumed by the engine.
type Catalog struct {
	Jobs         []ActionDef            `yaml:"jobs"`
	Crimes       []ActionDef            `yaml:"crimes"`
	Forage       map[string][]ActionDef `yaml:"forage"`
	Achievements []AchievementDef       `yaml:"achievements"`
	Games        Games                  `yaml:"games"`
	Tuning       Tuning                 `yaml:"tuning"`
}

// Cooldown returns the interval for an action family, or zero when the
// family has no cooldown configured.
func (c *Catalog) Cooldown(family string) time.Duration {
	return c.Tuning.Cooldowns[family].Std()
}

// Validate rejects catalogs that would produce nonsense outcomes.
func (c *Catalog) Validate() error {
	if len(c.Jobs) == 0 {
		return fmt.Errorf("catalog: no jobs defined")
	}
	if len(c.Crimes) == 0 {
		return fmt.Errorf("catalog: no crimes defined")
	}

	check := func(kind string, defs []ActionDef) error {
		for _, d := range defs {
			if d.ID == "" {
				return fmt.Errorf("catalog: %s entry with empty id", kind)
			}
			if d.Min < 0 || d.Max < d.Min {
				return fmt.Errorf("catalog: %s %q has invalid reward bounds [%d,%d]", kind, d.ID, d.Min, d.Max)
			}
			if d.SuccessChance < 0 || d.SuccessChance > 1 {
				return fmt.Errorf("catalog: %s %q has success chance outside [0,1]", kind, d.ID)
			}
			if d.DropChance < 0 || d.DropChance > 1 {
				return fmt.Errorf("catalog: %s %q has drop chance outside [0,1]", kind, d.ID)
			}
		}

		return nil
	}

	if err := check("job", c.Jobs); err != nil {
		return err
	}
	if err := check("crime", c.Crimes); err != nil {
		return err
	}
	for area, defs := range c.Forage {
		if err := check("forage:"+area, defs); err != nil {
			return err
		}
	}

	if c.Tuning.LevelThreshold <= 0 {
		return fmt.Errorf("catalog: level threshold must be positive")
	}

	return c.Games.validate()
}
