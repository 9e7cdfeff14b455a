// Package viewer runs the interactive terminal view of a maze.
package viewer

// State represents where the viewer is in the solve/reset cycle.
type State int

const (
	// StateUnsolved means the grid carries no search marks.
	StateUnsolved State = iota
	// StateSolved means the last search reached the exit.
	StateSolved
	// StateNoPath means the last search exhausted every reachable cell.
	StateNoPath
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnsolved:
		return "unsolved"
	case StateSolved:
		return "solved"
	case StateNoPath:
		return "no path"
	default:
		return "unknown"
	}
}
