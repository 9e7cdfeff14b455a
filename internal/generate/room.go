package generate

import "github.com/samdwyer/mazewalk/internal/maze"

// Room is a rectangular open area carved out of the maze.
type Room struct {
	Row, Col   int // Top-left corner
	Rows, Cols int // Size in cells
}

// Center returns the cell at the middle of the room.
func (r Room) Center() maze.Position {
	return maze.Pos(r.Row+r.Rows/2, r.Col+r.Cols/2)
}

// Contains returns true if the position is inside the room.
func (r Room) Contains(p maze.Position) bool {
	return p.Row >= r.Row && p.Row < r.Row+r.Rows && p.Col >= r.Col && p.Col < r.Col+r.Cols
}
