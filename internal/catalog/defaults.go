package catalog

import "time"

// Default returns the shipped balance tables. A yaml override file is layered
// on top of these by Load.
func Default() *Catalog {
	return &Catalog{
		Jobs: []ActionDef{
			{ID: "courier", Name: "Courier run", Min: 40, Max: 120, XP: 15},
			{ID: "barista", Name: "Barista shift", Min: 60, Max: 150, XP: 20},
			{ID: "busker", Name: "Street performance", Min: 20, Max: 200, XP: 25},
			{ID: "coder", Name: "Freelance gig", Min: 90, Max: 220, XP: 30},
			{ID: "landscaper", Name: "Yard work", Min: 50, Max: 140, XP: 18},
			{ID: "dog_walker", Name: "Dog walking", Min: 30, Max: 100, XP: 12},
		},
		Crimes: []ActionDef{
			{ID: "pickpocket", Name: "Pickpocketing", Min: 80, Max: 250, XP: 30, SuccessChance: 0.65, Penalty: 150},
			{ID: "shoplift", Name: "Shoplifting", Min: 120, Max: 400, XP: 40, SuccessChance: 0.50, Penalty: 300},
			{ID: "heist", Name: "Warehouse heist", Min: 400, Max: 1200, XP: 80, SuccessChance: 0.30, Penalty: 900},
			{ID: "hack", Name: "Crypto hack", Min: 250, Max: 800, XP: 60, SuccessChance: 0.40, Penalty: 600},
		},
		Forage: map[string][]ActionDef{
			"dig": {
				{ID: "backyard", Name: "Backyard", Min: 10, Max: 60, XP: 8, DropChance: 0.10, DropItem: "old_coin"},
				{ID: "beach", Name: "Beach", Min: 20, Max: 90, XP: 10, DropChance: 0.15, DropItem: "seashell"},
				{ID: "quarry", Name: "Quarry", Min: 30, Max: 140, XP: 14, DropChance: 0.05, DropItem: "gemstone"},
			},
			"fish": {
				{ID: "pond", Name: "Pond", Min: 15, Max: 70, XP: 9, DropChance: 0.20, DropItem: "carp"},
				{ID: "river", Name: "River", Min: 25, Max: 110, XP: 12, DropChance: 0.12, DropItem: "trout"},
				{ID: "deep_sea", Name: "Deep sea", Min: 40, Max: 180, XP: 18, DropChance: 0.06, DropItem: "marlin"},
			},
			"search": {
				{ID: "couch", Name: "Couch cushions", Min: 5, Max: 40, XP: 5, DropChance: 0.25, DropItem: "bottle_cap"},
				{ID: "park", Name: "City park", Min: 10, Max: 55, XP: 7, DropChance: 0.18, DropItem: "lost_wallet"},
				{ID: "dumpster", Name: "Dumpster", Min: 15, Max: 80, XP: 9, DropChance: 0.10, DropItem: "scrap_metal"},
			},
		},
		Achievements: []AchievementDef{
			{ID: "first_shift", Name: "First Shift", Reward: 100},
			{ID: "workaholic", Name: "Workaholic", Reward: 2500},
			{ID: "outlaw", Name: "Outlaw", Reward: 1500},
			{ID: "high_roller", Name: "High Roller", Reward: 2000},
			{ID: "lucky_streak", Name: "Lucky Streak", Reward: 3000},
			{ID: "millionaire", Name: "Millionaire", Reward: 10000},
			{ID: "safe_keeper", Name: "Safe Keeper", Reward: 1000},
			{ID: "pack_rat", Name: "Pack Rat", Reward: 1200},
			{ID: "seasoned", Name: "Seasoned", Reward: 5000},
			{ID: "founder", Name: "Founder", Reward: 0, Manual: true},
			{ID: "bug_hunter", Name: "Bug Hunter", Reward: 0, Manual: true},
		},
		Games: Games{
			MinBet: 10,
			MaxBet: 25000,

			Coinflip: CoinflipParams{Multiplier: 1.95},
			Dice:     DiceParams{Sides: 6, ExactMultiplier: 5.8},
			Roulette: RouletteParams{
				ColorMultiplier:    1.95,
				ParityMultiplier:   1.95,
				StraightMultiplier: 34,
			},
			HighLow: HighLowParams{Multiplier: 1.9},
			Slots: SlotsParams{
				Symbols: []SlotSymbol{
					{Symbol: "cherry", Multiplier: 3},
					{Symbol: "lemon", Multiplier: 4},
					{Symbol: "orange", Multiplier: 5},
					{Symbol: "bell", Multiplier: 8},
					{Symbol: "diamond", Multiplier: 15},
					{Symbol: "seven", Multiplier: 25},
				},
				PairMultiplier: 1.5,
			},
			Crash: CrashParams{
				Buckets: []CrashBucket{
					{P: 0.50, Min: 1.0, Max: 1.5},
					{P: 0.30, Min: 1.5, Max: 3.0},
					{P: 0.15, Min: 3.0, Max: 10.0},
					{P: 0.05, Min: 10.0, Max: 100.0},
				},
			},
			Plinko: PlinkoParams{
				// Binomial landing weights for 8 peg rows.
				Weights: []int{1, 8, 28, 56, 70, 56, 28, 8, 1},
				Tables: map[string][]float64{
					"low":    {2.0, 1.5, 1.2, 1.0, 0.5, 1.0, 1.2, 1.5, 2.0},
					"medium": {5.0, 3.0, 1.5, 0.8, 0.3, 0.8, 1.5, 3.0, 5.0},
					"high":   {10.0, 4.0, 1.5, 0.4, 0.2, 0.4, 1.5, 4.0, 10.0},
				},
			},
			Lottery: LotteryParams{
				NumberRange: 30,
				Picks:       5,
				MatchMultiplier: map[int]float64{
					3: 5,
					4: 50,
					5: 1000,
				},
			},
			Mines: MinesParams{
				GridSize:   25,
				Hazards:    5,
				Base:       1.2,
				SessionTTL: Duration(10 * time.Minute),
			},
			Blackjack: BlackjackParams{
				WinMultiplier:     2.0,
				NaturalMultiplier: 2.5,
			},
			Scratch: ScratchParams{
				Tiers: []ScratchTier{
					{Name: "dud", Multiplier: 0, Weight: 600},
					{Name: "refund", Multiplier: 1, Weight: 250},
					{Name: "double", Multiplier: 2, Weight: 100},
					{Name: "big", Multiplier: 5, Weight: 40},
					{Name: "jackpot", Multiplier: 20, Weight: 10},
				},
			},
		},
		Tuning: Tuning{
			StartingBalance: 500,
			LevelThreshold:  1000,
			VaultPerLevel:   2500,
			Cooldowns: map[string]Duration{
				"work":     Duration(10 * time.Minute),
				"crime":    Duration(15 * time.Minute),
				"dig":      Duration(5 * time.Minute),
				"fish":     Duration(3 * time.Minute),
				"search":   Duration(2 * time.Minute),
				"gamble":   Duration(5 * time.Second),
				"rob":      Duration(30 * time.Minute),
				"transfer": 0,
			},
			Boost: Boost{
				Weekday:        time.Saturday,
				CoinMultiplier: 2.0,
				XPMultiplier:   1.5,
				RescueChance:   0.15,
				RescueFraction: 0.25,
			},
			Rob: Rob{
				SuccessChance: 0.4,
				MaxFraction:   0.25,
				Penalty:       200,
			},
			Integrity: Integrity{
				MaxItemQuantity:     100_000,
				MaxPurchaseQuantity: 1_000,
				RapidWindow:         Duration(10 * time.Second),
				RapidThreshold:      5,
			},
		},
	}
}
