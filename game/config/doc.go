// Package config provides configuration management for the 2048 game.
//
// The config package handles:
//   - Loading game configurations from JSON files
//   - Filling unset numeric fields with the classic rules
//   - Configuration validation
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory. The
// file name without .json is the config ID used when creating sessions.
// Each configuration defines:
//   - Board size (3 to 8) and the target tile value
//   - How many tiles start on the board and spawn after each move
//   - The chance that a spawned tile is a 2 rather than a 4
//   - Whether a move that slides nothing still spawns a tile
//   - Game messages for merges, victory and game over
//
// Bundled Configurations:
//   - classic: 4x4 board, target 2048
//   - mini: 3x3 board, target 256
//   - big: 5x5 board, target 4096
//   - lenient: classic rules, but every move spawns a tile
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("mini")
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// When no file in the directory is usable, the manager falls back to the
// built-in classic rules under the ID "classic".
package config
