package maze

import "fmt"

// Position addresses one grid cell.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String formats the position as (row,col).
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Offsets in neighbour order: east, south, west, north.
// The order decides which route a search finds when several exist.
var neighborOffsets = [4]Position{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
}

// Adjacent reports whether q differs from p by one unit in exactly one coordinate.
func (p Position) Adjacent(q Position) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}
