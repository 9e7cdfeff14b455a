package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/theme"
)

// Glyphs drawn over the last column of the start and exit cells.
const (
	StartGlyph = 'S'
	ExitGlyph  = 'E'
)

// CellWidth is the number of columns used per maze cell.
const CellWidth = len(maze.TokenEmpty)

// Renderer handles drawing a maze grid to the screen.
type Renderer struct {
	screen  *Screen
	palette *theme.Palette
}

// NewRenderer creates a new renderer for the given screen and palette.
func NewRenderer(screen *Screen, palette *theme.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the grid, the start and exit markers, and a status line below
// the grid.
func (r *Renderer) Render(g *maze.Grid, status string) {
	r.screen.Clear()

	rows, cols := g.Dimensions()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := maze.Pos(row, col)
			m, err := g.At(p)
			if err != nil {
				continue
			}
			r.screen.SetText(col*CellWidth, row, m.Token(), r.palette.Style(m))
		}
	}

	// Markers go on top of whatever token the cell carries
	if start, ok := g.Start(); ok {
		r.drawMarker(start, StartGlyph, r.palette.StartStyle())
	}
	if exit, ok := g.Exit(); ok {
		r.drawMarker(exit, ExitGlyph, r.palette.ExitStyle())
	}

	r.RenderMessage(status, rows+1)
	r.screen.Show()
}

func (r *Renderer) drawMarker(p maze.Position, glyph rune, style tcell.Style) {
	r.screen.SetContent(p.Col*CellWidth+CellWidth-1, p.Row, glyph, style)
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.SetText(0, y, msg, style)
}
