package maze

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size rectangle of cell marks with optional start and exit cells.
type Grid struct {
	rows  int
	cols  int
	cells [][]Mark

	start    Position
	exit     Position
	hasStart bool
	hasExit  bool
}

// New creates a rows x cols grid with every cell Empty.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	cells := make([][]Mark, rows)
	for r := range cells {
		cells[r] = make([]Mark, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Dimensions returns the row and column counts.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Contains returns true if the position lies inside the grid.
func (g *Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) check(p Position) error {
	if !g.Contains(p) {
		return fmt.Errorf("%w: %s outside %dx%d", ErrOutOfBounds, p, g.rows, g.cols)
	}
	return nil
}

// SetWall places a wall at the position.
func (g *Grid) SetWall(p Position) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.cells[p.Row][p.Col] = Wall
	return nil
}

// SetStart records the start position. No mark is written.
func (g *Grid) SetStart(p Position) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.start, g.hasStart = p, true
	return nil
}

// SetExit records the exit position. No mark is written.
func (g *Grid) SetExit(p Position) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.exit, g.hasExit = p, true
	return nil
}

// Start returns the start position and whether it has been set.
func (g *Grid) Start() (Position, bool) {
	return g.start, g.hasStart
}

// Exit returns the exit position and whether it has been set.
func (g *Grid) Exit() (Position, bool) {
	return g.exit, g.hasExit
}

// At returns the mark at the position.
func (g *Grid) At(p Position) (Mark, error) {
	if err := g.check(p); err != nil {
		return Empty, err
	}
	return g.cells[p.Row][p.Col], nil
}

// Mark overwrites the mark at the position, whatever it was.
func (g *Grid) Mark(p Position, m Mark) error {
	if err := g.check(p); err != nil {
		return err
	}
	g.cells[p.Row][p.Col] = m
	return nil
}

// IsOpen returns true if the position is inside the grid and still Empty.
func (g *Grid) IsOpen(p Position) bool {
	return g.Contains(p) && g.cells[p.Row][p.Col] == Empty
}

// Neighbors returns the in-bounds cells adjacent to p, ordered east, south,
// west, north.
func (g *Grid) Neighbors(p Position) ([]Position, error) {
	if err := g.check(p); err != nil {
		return nil, err
	}

	result := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.Contains(n) {
			result = append(result, n)
		}
	}
	return result, nil
}

// Reset clears every Path and Tried mark. Walls, start and exit are kept.
func (g *Grid) Reset() {
	for r := range g.cells {
		for c, m := range g.cells[r] {
			if m.IsSearchMark() {
				g.cells[r][c] = Empty
			}
		}
	}
}

// Positions returns, in row-major order, every cell carrying the mark.
func (g *Grid) Positions(m Mark) []Position {
	var result []Position
	for r := range g.cells {
		for c, cell := range g.cells[r] {
			if cell == m {
				result = append(result, Position{Row: r, Col: c})
			}
		}
	}
	return result
}

// Count returns the number of cells carrying the mark.
func (g *Grid) Count(m Mark) int {
	n := 0
	for r := range g.cells {
		for _, cell := range g.cells[r] {
			if cell == m {
				n++
			}
		}
	}
	return n
}

// Render returns the grid as text, one line per row, three characters per cell.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols*3 + 1))
	for r := range g.cells {
		for _, m := range g.cells[r] {
			b.WriteString(m.Token())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
