// Package validate lints game configuration JSON files. It checks:
//   - JSON structure, flagging unknown keys
//   - Rule bounds (grid size, target value, spawn settings)
//   - Required message keys and their %d placeholders
//   - Playability: a fresh engine can be built and makes progress
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/VitSay/2048/game/engine"
	"github.com/gookit/color"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...interface{}) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

var requiredMessages = []string{"welcome", "merged", "no_change", "victory", "game_over"}

// File loads and validates a single configuration JSON file
func File(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	var messages map[string]string
	if msgData, ok := raw["messages"]; ok {
		if err := json.Unmarshal(msgData, &messages); err != nil {
			result.fail("Invalid messages: %v", err)
			return result
		}
	}
	for _, key := range requiredMessages {
		if messages[key] == "" {
			result.fail("Missing required message: %s", key)
		}
	}

	var config engine.GameConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		result.fail("Invalid config: %v", err)
		return result
	}

	engine.ApplyDefaults(&config)
	if err := engine.ValidateGameConfig(&config); err != nil {
		result.fail("%s", strings.TrimPrefix(err.Error(), "config validation: "))
	}

	if result.Valid {
		if err := playable(&config); err != nil {
			result.fail("Not playable: %v", err)
		}
	}

	if result.Valid {
		for _, key := range []string{"grid_size", "target_value", "initial_tiles", "spawn_per_move", "two_probability"} {
			if _, ok := raw[key]; !ok {
				result.info("%s not set, using default", key)
			}
		}
		result.info("Name: %s", config.Name)
		result.info("Grid: %dx%d", config.GridSize, config.GridSize)
		result.info("Target: %d", config.TargetValue)
		result.info("Spawns: %d initial, %d per move, P(2)=%g", config.InitialTiles, config.SpawnPerMove, config.TwoChance())
		if config.SpawnOnNoOp {
			result.info("Spawns on no-op moves")
		}
	}

	return result
}

// playable builds a seeded engine and cycles through every direction until
// something changes or the game ends
func playable(config *engine.GameConfig) error {
	eng, err := engine.NewEngine(config, engine.WithRandSource(engine.NewRandSource(1)))
	if err != nil {
		return err
	}

	state := eng.GetState()
	tiles := 0
	for _, row := range state.Grid {
		for _, v := range row {
			if v != 0 {
				tiles++
			}
		}
	}
	if tiles != config.InitialTiles {
		return fmt.Errorf("expected %d starting tiles, found %d", config.InitialTiles, tiles)
	}

	for _, dir := range engine.Directions {
		outcome, err := eng.Move(string(dir))
		if err != nil {
			return err
		}
		if outcome.Changed || outcome.GameOver {
			return nil
		}
	}
	return fmt.Errorf("no direction changed the starting board")
}

// Dir validates every *.json file in dir, sorted by name
func Dir(dir string) ([]ValidationResult, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("error finding config files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no config files in %s", dir)
	}
	sort.Strings(files)

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, File(file))
	}
	return results, nil
}

// Report prints a concise report and returns whether every file was valid
func Report(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, color.Green.Sprint("✅ VALID"))
			for _, info := range result.Errors {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, color.Red.Sprint("❌ INVALID"))
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Fprintln(w, "  ❌ "+err)
				}
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, color.Green.Sprint("✅ All configurations are valid!"))
	} else {
		fmt.Fprintln(w, color.Red.Sprint("❌ Some configurations have errors"))
	}
	return allValid
}
