// Package engine provides the core rules of the 2048 sliding-tile puzzle.
//
// The engine package implements:
//   - Tiles with a per-move merge tag
//   - Square grids with row compaction and quarter-turn rotation
//   - Random tile spawning on empty cells
//   - Running and best score tracking
//   - Move orchestration and the game-over state
//
// Core Types:
//
// Grid is a square matrix of *Tile slots. SlideRowLeft compacts and merges a
// single row; RotateRight turns the whole grid clockwise. Grid.Slide combines
// both so every direction is implemented by the same left slide:
//
//	left  = 0 quarter turns
//	down  = 1
//	right = 2
//	up    = 3
//
// The grid is rotated r times, every row is slid left, and the grid is rotated
// (4-r)%4 more times to restore its orientation.
//
// GameEngine owns one Grid, one ScoreTracker and a Spawner. GameState is the
// read-only snapshot handed to renderers and transports.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := gameEngine.Move("left")
//	if errors.Is(err, engine.ErrInvalidDirection) {
//		// state untouched
//	}
//	if outcome.GameOver {
//		gameEngine.Reset()
//	}
//
// Game Rules:
//
// Equal neighbours merge once per move into a tile of double value and the
// new value is added to the score. After a move that changed the grid one new
// tile (2 or 4) appears on a random empty cell. The game ends when the spawner
// finds no empty cell or no direction can change the grid any more. Reaching
// the configured target value sets the victory flag; play may continue.
package engine
