package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/VitSay/2048/game/engine"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const (
	DefaultWidth = 80
)

// Game runs one engine against a keyboard and a screen
type Game struct {
	engine     *engine.GameEngine
	configName string
	in         *bufio.Reader
	out        io.Writer
	renderer   *Renderer
}

// NewGame wires an engine to the given input and output
func NewGame(eng *engine.GameEngine, configName string, in io.Reader, out io.Writer, width int) *Game {
	return &Game{
		engine:     eng,
		configName: configName,
		in:         bufio.NewReader(in),
		out:        out,
		renderer:   NewRenderer(width),
	}
}

// Run draws the board and applies keypresses until quit, end of input or
// ctx is cancelled
func (g *Game) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.renderer.Render(g.out, g.engine.GetState(), g.configName)

		key, err := ReadKey(g.in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if quit := g.apply(key); quit {
			return nil
		}
	}
}

// apply performs the action for key and reports whether to stop
func (g *Game) apply(key Key) bool {
	switch key {
	case KeyQuit:
		return true
	case KeyReset:
		g.engine.Reset()
		log.Debug("New game")
		return false
	}

	dir, ok := key.Direction()
	if !ok {
		return false
	}

	outcome, err := g.engine.Move(string(dir))
	if err != nil {
		// Moves on a finished board are ignored until reset
		if !errors.Is(err, engine.ErrGameOver) {
			log.WithError(err).Warn("Move rejected")
		}
		return false
	}

	log.WithFields(log.Fields{
		"direction": dir,
		"changed":   outcome.Changed,
		"score":     g.engine.GetScore(),
	}).Debug("Move")
	return false
}

// Play runs an interactive game on the process terminal. Stdin is put in
// raw mode for the duration when it is a terminal.
func Play(ctx context.Context, eng *engine.GameEngine, configName string) error {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("cannot set terminal to raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = DefaultWidth
	}

	game := NewGame(eng, configName, os.Stdin, os.Stdout, width)
	err = game.Run(ctx)

	fmt.Fprint(os.Stdout, T("GOODBYE", eng.GetScore(), eng.GetBestScore())+newline)
	return err
}
