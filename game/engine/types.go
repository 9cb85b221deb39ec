package engine

import "strings"

// Direction is one of the four shift commands
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists every valid direction in a stable order
var Directions = []Direction{Up, Down, Left, Right}

// Phase is the engine's position in the per-move state machine
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseSliding  Phase = "sliding"
	PhaseSpawning Phase = "spawning"
	PhaseGameOver Phase = "game_over"
)

const (
	// Validation constants
	MinGridSize       = 3
	MaxGridSize       = 8
	DefaultGridSize   = 4
	DefaultTarget     = 2048
	DefaultTwoChance  = 0.5
	MaxInitialTiles   = 4
	MaxSpawnPerMove   = 3
	MaxBulkMoves      = 50
	WebSocketBufferSz = 256
)

// ParseDirection converts a direction token (case-insensitive) to a Direction
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Left, Right, Up, Down:
		return d, nil
	}
	return "", &DirectionError{Token: s}
}

// rotations returns how many clockwise quarter turns make "slide left"
// equivalent to sliding in d.
func (d Direction) rotations() int {
	switch d {
	case Down:
		return 1
	case Right:
		return 2
	case Up:
		return 3
	default:
		return 0
	}
}

// Position is a row/column coordinate on the grid
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Messages holds the player-facing texts a config can override
type Messages struct {
	Welcome  string `json:"welcome"`
	Merged   string `json:"merged"`    // %d: score gained
	NoChange string `json:"no_change"` // move left the grid untouched
	Victory  string `json:"victory"`   // %d: target value
	GameOver string `json:"game_over"` // %d: final score
}

// GameConfig describes one rule set, loaded from JSON
type GameConfig struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	GridSize       int      `json:"grid_size"`
	TargetValue    int      `json:"target_value"`
	InitialTiles   int      `json:"initial_tiles"`
	SpawnPerMove   int      `json:"spawn_per_move"`
	TwoProbability *float64 `json:"two_probability,omitempty"`
	SpawnOnNoOp    bool     `json:"spawn_on_noop"`
	Messages       Messages `json:"messages"`
}

// GameState is the read-only render feed: a snapshot of the grid and scores
type GameState struct {
	Grid        [][]int            `json:"grid"`
	Size        int                `json:"size"`
	Score       int                `json:"score"`
	BestScore   int                `json:"best_score"`
	HighestTile int                `json:"highest_tile"`
	Status      Phase              `json:"status"`
	Message     string             `json:"message"`
	GameOver    bool               `json:"game_over"`
	Victory     bool               `json:"victory"`
	ConfigName  string             `json:"config_name"`
	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`

	// CurrentMovesCount counts moves since the last reset; TotalMoves never resets.
	CurrentMovesCount int `json:"current_moves_count"`

	// Computed helper views
	PossibleMoves []string `json:"possible_moves,omitempty"`
}

// MoveHistoryEntry records one accepted move
type MoveHistoryEntry struct {
	Direction  string     `json:"direction"`
	Changed    bool       `json:"changed"`
	Merges     int        `json:"merges"`
	ScoreDelta int        `json:"score_delta"`
	Score      int        `json:"score"`
	Spawned    []Position `json:"spawned,omitempty"`
	Timestamp  int64      `json:"timestamp"`
	MoveNumber int        `json:"move_number"`
}

// MoveOutcome summarizes what a single Move did
type MoveOutcome struct {
	Direction  Direction  `json:"direction"`
	Changed    bool       `json:"changed"`
	Merges     int        `json:"merges"`
	ScoreDelta int        `json:"score_delta"`
	Spawned    []Position `json:"spawned,omitempty"`
	NewBest    bool       `json:"new_best"`
	Victory    bool       `json:"victory"`
	GameOver   bool       `json:"game_over"`
}
