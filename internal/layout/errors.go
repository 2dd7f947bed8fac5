package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomNotFound is returned when no room has the requested identifier.
	ErrRoomNotFound = errors.New("room not found")
	// ErrGridOverflow is returned when a tile falls outside the grid extent.
	ErrGridOverflow = errors.New("grid overflow")
)

// OverflowError reports the first occupied cell that did not fit the grid.
type OverflowError struct {
	Room          string
	X, Y          int
	Width, Height int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("room %q: tile at (%d,%d) exceeds %dx%d grid", e.Room, e.X, e.Y, e.Width, e.Height)
}

// Unwrap lets errors.Is match ErrGridOverflow.
func (e *OverflowError) Unwrap() error {
	return ErrGridOverflow
}
