package engine

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	IsVictory() bool
	GetScore() int
	GetBestScore() int
	Phase() Phase

	// Movement operations
	Move(direction string) (*MoveOutcome, error)
	CanMove(direction string) bool
	GetPossibleMoves() []string

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface. It owns exactly one Grid and
// one ScoreTracker; the spawner and slide logic only borrow the grid.
type GameEngine struct {
	config  *GameConfig
	grid    Grid
	scores  *ScoreTracker
	rng     RandSource
	spawner *Spawner
	store   BestScoreStore
	phase   Phase
	victory bool
	message string

	history      []MoveHistoryEntry
	totalMoves   int
	currentMoves int
}

// Option customizes a GameEngine
type Option func(*GameEngine)

// WithRandSource makes spawning deterministic
func WithRandSource(src RandSource) Option {
	return func(e *GameEngine) { e.rng = src }
}

// WithBestScoreStore sets where the best score is loaded from and saved to
func WithBestScoreStore(store BestScoreStore) Option {
	return func(e *GameEngine) { e.store = store }
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig, opts ...Option) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	e := &GameEngine{config: config}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = &MemoryBestScore{}
	}
	e.spawner = NewSpawner(e.rng, config.TwoChance())
	e.scores = NewScoreTracker(e.loadBest())

	if err := e.newBoard(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewEngineWithDefaults creates a new game engine with the classic rules
func NewEngineWithDefaults(opts ...Option) *GameEngine {
	e, err := NewEngine(DefaultConfig(), opts...)
	if err != nil {
		panic(fmt.Sprintf("default config rejected: %v", err))
	}
	return e
}

func (e *GameEngine) loadBest() int {
	best, err := e.store.LoadBestScore()
	if err != nil {
		log.WithError(err).Warn("Failed to load best score, starting from 0")
		return 0
	}
	return best
}

// newBoard replaces the grid with a fresh one holding InitialTiles tiles
func (e *GameEngine) newBoard() error {
	grid, err := NewGrid(e.config.GridSize)
	if err != nil {
		return err
	}
	for i := 0; i < e.config.InitialTiles; i++ {
		if _, err := e.spawner.Place(grid); err != nil {
			return fmt.Errorf("failed to place initial tile: %w", err)
		}
	}
	e.grid = grid
	e.phase = PhaseIdle
	e.victory = false
	e.message = e.config.Messages.Welcome
	return nil
}

// GetState returns a snapshot of the current game state
func (e *GameEngine) GetState() *GameState {
	history := make([]MoveHistoryEntry, len(e.history))
	copy(history, e.history)

	state := &GameState{
		Grid:              e.grid.Values(),
		Size:              e.grid.Size(),
		Score:             e.scores.Current(),
		BestScore:         e.GetBestScore(),
		HighestTile:       e.grid.MaxTile(),
		Status:            e.phase,
		Message:           e.message,
		GameOver:          e.phase == PhaseGameOver,
		Victory:           e.victory,
		ConfigName:        e.config.Name,
		MoveHistory:       history,
		TotalMoves:        e.totalMoves,
		CurrentMovesCount: e.currentMoves,
	}
	state.PossibleMoves = e.GetPossibleMoves()
	return state
}

// SetState restores a snapshot (used for persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	grid, err := GridFromValues(state.Grid)
	if err != nil {
		return err
	}
	if grid.Size() != e.config.GridSize {
		return fmt.Errorf("%w: state grid is %dx%d, config wants %d", ErrMalformedGrid, grid.Size(), grid.Size(), e.config.GridSize)
	}

	e.grid = grid
	e.scores.Restore(state.Score, state.BestScore)
	e.victory = state.Victory
	e.message = state.Message
	e.history = append([]MoveHistoryEntry(nil), state.MoveHistory...)
	e.totalMoves = state.TotalMoves
	e.currentMoves = state.CurrentMovesCount
	e.phase = PhaseIdle
	if state.GameOver {
		e.phase = PhaseGameOver
	}
	return nil
}

// Reset rebuilds the board and score tracker; best score and cumulative
// history survive.
func (e *GameEngine) Reset() *GameState {
	best := e.scores.Best()
	if stored := e.loadBest(); stored > best {
		best = stored
	}
	e.scores = NewScoreTracker(best)
	if err := e.newBoard(); err != nil {
		// Unreachable for a validated config.
		log.WithError(err).Error("Failed to rebuild board on reset")
	}
	e.currentMoves = 0
	return e.GetState()
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	return e.phase == PhaseGameOver
}

// IsVictory returns whether a tile reached the target value
func (e *GameEngine) IsVictory() bool {
	return e.victory
}

// GetScore returns the current score
func (e *GameEngine) GetScore() int {
	return e.scores.Current()
}

// GetBestScore returns the best score seen by this engine or recorded in its store
func (e *GameEngine) GetBestScore() int {
	best := e.scores.Best()
	if stored := e.loadBest(); stored > best {
		return stored
	}
	return best
}

// Phase returns the current state-machine phase
func (e *GameEngine) Phase() Phase {
	return e.phase
}

// GetGrid returns a copy of the grid
func (e *GameEngine) GetGrid() Grid {
	return e.grid.Clone()
}

// Move shifts the grid in the given direction, spawns new tiles and updates
// the score. Running out of room is reported through MoveOutcome.GameOver,
// not as an error. An invalid direction leaves the state untouched.
func (e *GameEngine) Move(direction string) (*MoveOutcome, error) {
	dir, err := ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	if e.phase == PhaseGameOver {
		return nil, ErrGameOver
	}

	e.phase = PhaseSliding
	next, slide, err := e.grid.Slide(dir)
	if err != nil {
		e.phase = PhaseIdle
		return nil, err
	}
	e.grid = next
	e.scores.Add(slide.ScoreGained)

	outcome := &MoveOutcome{
		Direction:  dir,
		Changed:    slide.Changed,
		Merges:     slide.Merges,
		ScoreDelta: slide.ScoreGained,
	}

	e.phase = PhaseSpawning
	gridFull := false
	if slide.Changed || e.config.SpawnOnNoOp {
		for i := 0; i < e.config.SpawnPerMove; i++ {
			pos, err := e.spawner.Place(e.grid)
			if errors.Is(err, ErrGridFull) {
				gridFull = true
				break
			}
			outcome.Spawned = append(outcome.Spawned, pos)
		}
	}

	outcome.NewBest = e.updateBest()

	switch {
	case slide.ScoreGained > 0 && e.config.Messages.Merged != "":
		e.message = fmt.Sprintf(e.config.Messages.Merged, slide.ScoreGained)
	case !slide.Changed:
		e.message = e.config.Messages.NoChange
	default:
		e.message = ""
	}

	if !e.victory && e.grid.MaxTile() >= e.config.TargetValue {
		e.victory = true
		outcome.Victory = true
		if e.config.Messages.Victory != "" {
			e.message = fmt.Sprintf(e.config.Messages.Victory, e.config.TargetValue)
		}
	}

	if gridFull || !e.grid.HasMoves() {
		e.phase = PhaseGameOver
		outcome.GameOver = true
		if e.config.Messages.GameOver != "" {
			e.message = fmt.Sprintf(e.config.Messages.GameOver, e.scores.Current())
		}
	} else {
		e.phase = PhaseIdle
	}

	e.addMoveToHistory(outcome)
	return outcome, nil
}

// updateBest raises the best score and persists it when the current score
// beats the stored record. The store may be shared with other engines on the
// same config, so the tracker first catches up with it.
func (e *GameEngine) updateBest() bool {
	e.scores.RaiseBest(e.loadBest())
	if !e.scores.MaybeUpdateBest() {
		return false
	}
	if err := e.store.SaveBestScore(e.scores.Best()); err != nil {
		log.WithError(err).WithField("best", e.scores.Best()).Warn("Failed to persist best score")
	}
	return true
}

func (e *GameEngine) addMoveToHistory(outcome *MoveOutcome) {
	entry := MoveHistoryEntry{
		Direction:  string(outcome.Direction),
		Changed:    outcome.Changed,
		Merges:     outcome.Merges,
		ScoreDelta: outcome.ScoreDelta,
		Score:      e.scores.Current(),
		Spawned:    outcome.Spawned,
		Timestamp:  time.Now().Unix(),
		MoveNumber: e.totalMoves + 1,
	}
	e.history = append(e.history, entry)
	e.totalMoves++
	e.currentMoves++
}

// CanMove checks whether moving in direction would change the grid
func (e *GameEngine) CanMove(direction string) bool {
	if e.phase == PhaseGameOver {
		return false
	}
	dir, err := ParseDirection(direction)
	if err != nil {
		return false
	}
	_, slide, err := e.grid.Slide(dir)
	return err == nil && slide.Changed
}

// GetPossibleMoves returns all directions that would change the grid
func (e *GameEngine) GetPossibleMoves() []string {
	var possible []string
	for _, dir := range Directions {
		if e.CanMove(string(dir)) {
			possible = append(possible, string(dir))
		}
	}
	return possible
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and starts a new board
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}
	e.config = config
	e.spawner = NewSpawner(e.rng, config.TwoChance())
	e.scores.Reset()
	e.currentMoves = 0
	return e.newBoard()
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.history
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.history) == 0 {
		return nil
	}
	return &e.history[len(e.history)-1]
}
