package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/VitSay/2048/game/engine"
	"github.com/gookit/color"
)

// fixedRand always picks the first empty cell and spawns a 4
type fixedRand struct{}

func (fixedRand) IntN(n int) int   { return 0 }
func (fixedRand) Float64() float64 { return 0.9 }

func newTestEngine(t *testing.T, values [][]int) *engine.GameEngine {
	t.Helper()
	eng, err := engine.NewEngine(engine.DefaultConfig(), engine.WithRandSource(fixedRand{}))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	state := eng.GetState()
	state.Grid = values
	if err := eng.SetState(state); err != nil {
		t.Fatalf("SetState failed: %v", err)
	}
	return eng
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"csi up", "\x1b[A", KeyUp},
		{"csi down", "\x1b[B", KeyDown},
		{"csi right", "\x1b[C", KeyRight},
		{"csi left", "\x1b[D", KeyLeft},
		{"ss3 up", "\x1bOA", KeyUp},
		{"wasd", "d", KeyRight},
		{"vim", "k", KeyUp},
		{"reset", "r", KeyReset},
		{"quit", "q", KeyQuit},
		{"ctrl c", "\x03", KeyQuit},
		{"unknown escape", "\x1b[Z", KeyNone},
		{"alt key", "\x1bx", KeyNone},
		{"other", "z", KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadKey(bytes.NewReader([]byte(tt.input)))
			if err != nil {
				t.Fatalf("ReadKey failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected key %d, got %d", tt.want, got)
			}
		})
	}
}

func TestKeyDirection(t *testing.T) {
	if dir, ok := KeyLeft.Direction(); !ok || dir != engine.Left {
		t.Errorf("Expected left, got %q %v", dir, ok)
	}
	if _, ok := KeyReset.Direction(); ok {
		t.Error("Reset is not a direction")
	}
}

func TestCatalog(t *testing.T) {
	if got := T("SCORE", 128); got != "Score: 128" {
		t.Errorf("Expected 'Score: 128', got %q", got)
	}
	if got := T("TITLE"); got != "2048" {
		t.Errorf("Expected title 2048, got %q", got)
	}
	if got := T("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("Unknown keys should fall back to the key, got %q", got)
	}
}

func TestBoard(t *testing.T) {
	r := NewRenderer(0)
	lines := r.Board([][]int{
		{2, 0, 0},
		{0, 16, 0},
		{0, 0, 2048},
	})

	if len(lines) != 7 {
		t.Fatalf("Expected 7 lines, got %d", len(lines))
	}
	want := []string{
		"+------+------+------+",
		"|    2 |      |      |",
		"+------+------+------+",
		"|      |   16 |      |",
		"+------+------+------+",
		"|      |      | 2048 |",
		"+------+------+------+",
	}
	for i, line := range lines {
		if got := color.ClearCode(line); got != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got)
		}
	}

	wide := r.Board([][]int{{131072, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	if got := color.ClearCode(wide[1]); got != "| 131072 |        |        |" {
		t.Errorf("Unexpected wide row %q", got)
	}
}

func TestGameRun_MoveAndQuit(t *testing.T) {
	eng := newTestEngine(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	var out bytes.Buffer
	game := NewGame(eng, "Classic", strings.NewReader("\x1b[Dq"), &out, 80)
	if err := game.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if eng.GetScore() != 4 {
		t.Errorf("Expected score 4, got %d", eng.GetScore())
	}
	row := eng.GetState().Grid[0]
	if row[0] != 4 || row[1] != 4 {
		t.Errorf("Expected merged 4 and spawned 4, got %v", row)
	}

	frames := strings.Split(color.ClearCode(out.String()), "\033[H\033[2J")
	last := frames[len(frames)-1]
	if !strings.Contains(last, "Score: 4") || !strings.Contains(last, "Board: Classic") {
		t.Errorf("Final frame missing score or board name:\n%s", last)
	}
}

func TestGameRun_GameOverThenReset(t *testing.T) {
	eng := newTestEngine(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{8, 16, 32, 0},
	})

	// right fills the last cell and ends the game, up is ignored, r restarts
	var out bytes.Buffer
	game := NewGame(eng, "Classic", strings.NewReader("dwr"), &out, 80)
	if err := game.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(color.ClearCode(out.String()), "No moves left") {
		t.Error("Expected the game over banner to be drawn")
	}
	if eng.IsGameOver() {
		t.Error("Reset should have started a new game")
	}
	if eng.GetScore() != 0 {
		t.Errorf("Expected fresh score, got %d", eng.GetScore())
	}
}

func TestGameRun_Cancelled(t *testing.T) {
	eng := newTestEngine(t, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	game := NewGame(eng, "Classic", strings.NewReader("a"), &bytes.Buffer{}, 80)
	if err := game.Run(ctx); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
