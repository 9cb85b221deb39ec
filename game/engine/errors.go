package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirection is returned for an unrecognized direction token.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrGridFull signals the spawner found no empty cell. The engine turns it
	// into a game-over state instead of returning it from Move.
	ErrGridFull = errors.New("grid full")
	// ErrMalformedGrid is returned when a grid is not square.
	ErrMalformedGrid = errors.New("malformed grid")
	// ErrGameOver is returned when moving on a finished game.
	ErrGameOver = errors.New("game over")
)

// DirectionError carries the rejected token
type DirectionError struct {
	Token string
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("invalid direction %q: use up, down, left or right", e.Token)
}

func (e *DirectionError) Unwrap() error {
	return ErrInvalidDirection
}
