package tui

import (
	"io"

	"github.com/VitSay/2048/game/engine"
)

// Key is a decoded keypress
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyReset
	KeyQuit
)

// Direction maps an arrow-like key to a move, ok is false for other keys
func (k Key) Direction() (engine.Direction, bool) {
	switch k {
	case KeyUp:
		return engine.Up, true
	case KeyDown:
		return engine.Down, true
	case KeyLeft:
		return engine.Left, true
	case KeyRight:
		return engine.Right, true
	}
	return "", false
}

// ReadKey reads one keypress from a raw-mode terminal. Arrow keys arrive as
// CSI (ESC [) or SS3 (ESC O) sequences. Unrecognised input yields KeyNone.
func ReadKey(r io.ByteReader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyNone, err
	}

	switch b {
	case 0x1b:
		return readEscape(r)
	case 3, 4, 'q', 'Q': // Ctrl+C, Ctrl+D
		return KeyQuit, nil
	case 'w', 'W', 'k', 'K':
		return KeyUp, nil
	case 's', 'S', 'j', 'J':
		return KeyDown, nil
	case 'a', 'A', 'h', 'H':
		return KeyLeft, nil
	case 'd', 'D', 'l', 'L':
		return KeyRight, nil
	case 'r', 'R':
		return KeyReset, nil
	}
	return KeyNone, nil
}

func readEscape(r io.ByteReader) (Key, error) {
	b2, err := r.ReadByte()
	if err != nil {
		return KeyNone, err
	}
	if b2 != '[' && b2 != 'O' {
		return KeyNone, nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return KeyNone, err
	}
	switch b3 {
	case 'A':
		return KeyUp, nil
	case 'B':
		return KeyDown, nil
	case 'C':
		return KeyRight, nil
	case 'D':
		return KeyLeft, nil
	}
	// Unknown escape sequence, discard it
	return KeyNone, nil
}
