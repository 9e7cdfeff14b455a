// Package maze provides the grid of cell marks that a search walks over.
package maze

// Mark classifies a single grid cell.
type Mark uint8

const (
	// Empty is an open cell the search has not entered. It is the zero value.
	Empty Mark = iota
	// Wall is an impassable cell. Walls are placed before a search begins.
	Wall
	// Path is a cell on the route currently believed to reach the exit.
	Path
	// Tried is a cell the search entered and abandoned.
	Tried
)

// String returns a human-readable mark name.
func (m Mark) String() string {
	switch m {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Tried:
		return "tried"
	default:
		return "unknown"
	}
}

// IsSearchMark reports whether the mark is left behind by a search.
func (m Mark) IsSearchMark() bool {
	return m == Path || m == Tried
}

// Render tokens, three characters per cell.
const (
	TokenWall  = "  *"
	TokenPath  = "  x"
	TokenTried = "  o"
	TokenEmpty = "   "
)

var tokens = map[Mark]string{
	Wall:  TokenWall,
	Path:  TokenPath,
	Tried: TokenTried,
}

// Token returns the three-character render token for the mark.
func (m Mark) Token() string {
	if t, ok := tokens[m]; ok {
		return t
	}
	return TokenEmpty
}
