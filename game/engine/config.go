package engine

import (
	"fmt"
	"strings"
)

// DefaultConfig returns the classic 4x4 rules
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:           "Classic",
		Description:    "Classic 4x4 board, reach 2048",
		GridSize:       DefaultGridSize,
		TargetValue:    DefaultTarget,
		InitialTiles:   2,
		SpawnPerMove:   1,
		TwoProbability: Probability(DefaultTwoChance),
		Messages: Messages{
			Welcome:  "Join the numbers and get to the 2048 tile!",
			Merged:   "Merged for +%d",
			NoChange: "Nothing moved",
			Victory:  "You reached %d!",
			GameOver: "No moves left. Final score: %d",
		},
	}
}

// Probability returns a pointer for GameConfig.TwoProbability
func Probability(p float64) *float64 {
	return &p
}

// TwoChance is the probability that a spawned tile is a 2. An unset value
// means the default 0.5; an explicit 0 spawns only 4s.
func (c *GameConfig) TwoChance() float64 {
	if c.TwoProbability == nil {
		return DefaultTwoChance
	}
	return *c.TwoProbability
}

// ApplyDefaults fills zero-valued numeric fields and an unset
// two_probability with the classic rules.
func ApplyDefaults(config *GameConfig) {
	if config.GridSize == 0 {
		config.GridSize = DefaultGridSize
	}
	if config.TargetValue == 0 {
		config.TargetValue = DefaultTarget
	}
	if config.InitialTiles == 0 {
		config.InitialTiles = 2
	}
	if config.SpawnPerMove == 0 {
		config.SpawnPerMove = 1
	}
	if config.TwoProbability == nil {
		config.TwoProbability = Probability(DefaultTwoChance)
	}
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.GridSize < MinGridSize || config.GridSize > MaxGridSize {
		return fmt.Errorf("config validation: grid_size must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.GridSize)
	}

	if !isPowerOfTwo(config.TargetValue) || config.TargetValue < 8 {
		return fmt.Errorf("config validation: target_value must be a power of two >= 8, got %d", config.TargetValue)
	}
	// Every cell doubling from a spawned 4 bounds the largest reachable tile.
	cells := config.GridSize * config.GridSize
	if cells+1 < 62 && config.TargetValue > 1<<(cells+1) {
		return fmt.Errorf("config validation: target_value %d is unreachable on a %dx%d grid", config.TargetValue, config.GridSize, config.GridSize)
	}

	maxInitial := MaxInitialTiles
	if cells < maxInitial {
		maxInitial = cells
	}
	if config.InitialTiles < 1 || config.InitialTiles > maxInitial {
		return fmt.Errorf("config validation: initial_tiles must be between 1 and %d, got %d", maxInitial, config.InitialTiles)
	}
	if config.SpawnPerMove < 1 || config.SpawnPerMove > MaxSpawnPerMove {
		return fmt.Errorf("config validation: spawn_per_move must be between 1 and %d, got %d", MaxSpawnPerMove, config.SpawnPerMove)
	}
	if p := config.TwoChance(); p < 0 || p > 1 {
		return fmt.Errorf("config validation: two_probability must be between 0 and 1, got %g", p)
	}

	formats := map[string]string{
		"merged":    config.Messages.Merged,
		"victory":   config.Messages.Victory,
		"game_over": config.Messages.GameOver,
	}
	for key, msg := range formats {
		if msg != "" && !strings.Contains(msg, "%d") {
			return fmt.Errorf("config validation: messages.%s must contain %%d", key)
		}
	}

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
