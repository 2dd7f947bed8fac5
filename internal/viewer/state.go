// Package viewer runs the interactive terminal room preview.
package viewer

// State represents what the status line is showing.
type State int

const (
	// StateViewing means the current grid was built successfully.
	StateViewing State = iota
	// StateError means the last build or lookup failed; the previous grid stays on screen.
	StateError
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
