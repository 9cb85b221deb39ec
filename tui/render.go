package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/VitSay/2048/game/engine"
	"github.com/gookit/color"
)

// Raw mode turns off output post-processing, so every line ends in CRLF
const newline = "\r\n"

// Renderer draws a game state as text
type Renderer struct {
	// Width is the terminal width used to centre the board
	Width int

	colorTitle   color.Style
	colorSubtle  color.Style
	colorMessage color.Style
	colorDenied  color.Style
	tileColors   map[int]color.Style
	colorBigTile color.Style
}

// NewRenderer creates a renderer for a terminal of the given width
func NewRenderer(width int) *Renderer {
	return &Renderer{
		Width:        width,
		colorTitle:   color.Style{color.FgYellow, color.OpBold},
		colorSubtle:  color.Style{color.FgGray},
		colorMessage: color.Style{color.FgCyan},
		colorDenied:  color.Style{color.FgRed, color.OpBold},
		tileColors: map[int]color.Style{
			2:    {color.FgWhite},
			4:    {color.FgWhite, color.OpBold},
			8:    {color.FgYellow},
			16:   {color.FgYellow, color.OpBold},
			32:   {color.FgRed},
			64:   {color.FgRed, color.OpBold},
			128:  {color.FgMagenta},
			256:  {color.FgMagenta, color.OpBold},
			512:  {color.FgCyan},
			1024: {color.FgCyan, color.OpBold},
			2048: {color.FgGreen, color.OpBold},
		},
		colorBigTile: color.Style{color.FgBlack, color.BgGreen, color.OpBold},
	}
}

func (r *Renderer) tileStyle(value int) color.Style {
	if style, ok := r.tileColors[value]; ok {
		return style
	}
	return r.colorBigTile
}

// cellWidth fits the widest tile with a space either side
func cellWidth(grid [][]int) int {
	width := 4
	for _, row := range grid {
		for _, v := range row {
			if w := len(strconv.Itoa(v)); w > width {
				width = w
			}
		}
	}
	return width + 2
}

// Board renders the grid as a boxed table, one string per line
func (r *Renderer) Board(grid [][]int) []string {
	if len(grid) == 0 {
		return nil
	}
	cw := cellWidth(grid)
	border := "+" + strings.Repeat(strings.Repeat("-", cw)+"+", len(grid))

	lines := []string{border}
	for _, row := range grid {
		var b strings.Builder
		b.WriteString("|")
		for _, v := range row {
			if v == 0 {
				b.WriteString(strings.Repeat(" ", cw))
			} else {
				cell := fmt.Sprintf("%*d ", cw-1, v)
				b.WriteString(r.tileStyle(v).Sprint(cell))
			}
			b.WriteString("|")
		}
		lines = append(lines, b.String(), border)
	}
	return lines
}

func (r *Renderer) pad(visible int) string {
	if r.Width <= visible {
		return ""
	}
	return strings.Repeat(" ", (r.Width-visible)/2)
}

// Render clears the screen and draws the header, board, status and help
func (r *Renderer) Render(w io.Writer, state *engine.GameState, configName string) {
	fmt.Fprint(w, "\033[H\033[2J")

	board := r.Board(state.Grid)
	boardWidth := 0
	if len(board) > 0 {
		boardWidth = len(board[0])
	}
	pad := r.pad(boardWidth)

	header := fmt.Sprintf("%s   %s   %s", T("TITLE"), T("SCORE", state.Score), T("BEST", state.BestScore))
	fmt.Fprint(w, newline)
	fmt.Fprint(w, pad+r.colorTitle.Sprint(header)+newline)
	fmt.Fprint(w, pad+r.colorSubtle.Sprint(fmt.Sprintf("%s   %s", T("CONFIG", configName), T("MOVES", state.CurrentMovesCount)))+newline)
	fmt.Fprint(w, newline)

	for _, line := range board {
		fmt.Fprint(w, pad+line+newline)
	}
	fmt.Fprint(w, newline)

	switch {
	case state.GameOver:
		fmt.Fprint(w, pad+r.colorDenied.Sprint(T("GAME_OVER"))+newline)
	case state.Message != "":
		fmt.Fprint(w, pad+r.colorMessage.Sprint(state.Message)+newline)
	}
	fmt.Fprint(w, pad+r.colorSubtle.Sprint(T("HELP"))+newline)
}
