package viewer

import "github.com/samdwyer/mazewalk/internal/theme"

// Config holds viewer options.
type Config struct {
	// Title is shown in the status line, usually the maze file name.
	Title string
	// Palette colours the grid. Nil means the built-in default theme.
	Palette *theme.Palette
	// SolveOnStart runs the search before the first frame is drawn.
	SolveOnStart bool
}
