// Package generate builds random solvable mazes from rooms joined by corridors.
package generate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

const (
	// Default maze dimensions
	DefaultRows = 21
	DefaultCols = 41

	// BSP parameters
	minRoomSize = 3 // Minimum room dimension
	maxRoomSize = 8 // Maximum room dimension
	minLeafSize = 5 // Minimum BSP leaf size before stopping split

	// MinSize is the smallest row or column count that fits one room
	// inside the outer wall.
	MinSize = minLeafSize + 2
)

// ErrTooSmall is returned when the requested maze cannot hold a room.
var ErrTooSmall = errors.New("generate: maze too small")

// Generator carves rooms and corridors out of a solid block of walls.
type Generator struct {
	Rows int
	Cols int

	rng   *rand.Rand
	open  [][]bool
	rooms []Room
}

// New creates a generator. A nil rng seeds one from the clock.
func New(rows, cols int, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		Rows: rows,
		Cols: cols,
		rng:  rng,
	}
}

// NewSeeded creates a generator whose output is fixed by seed.
func NewSeeded(rows, cols int, seed int64) *Generator {
	return New(rows, cols, rand.New(rand.NewSource(seed)))
}

// Rooms returns the rooms carved by the last Generate call.
func (g *Generator) Rooms() []Room {
	return g.rooms
}

// Generate lays out the maze using BSP. The start is the centre of the first
// room and the exit the centre of the last, so the result is always solvable.
func (g *Generator) Generate(ctx context.Context) (*maze.Grid, error) {
	tracer := telemetry.Tracer("generate")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	if g.Rows < MinSize || g.Cols < MinSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, g.Rows, g.Cols, MinSize, MinSize)
	}

	startTime := time.Now()

	g.open = make([][]bool, g.Rows)
	for r := range g.open {
		g.open[r] = make([]bool, g.Cols)
	}
	g.rooms = g.rooms[:0]

	// Start BSP inside the outer wall
	root := &bspNode{
		row:  1,
		col:  1,
		rows: g.Rows - 2,
		cols: g.Cols - 2,
	}

	g.splitNode(root)
	g.createRooms(root)
	g.connectRooms(root)

	if len(g.rooms) == 0 {
		// Leaves too tight for a room; fall back to one room filling the interior
		room := Room{Row: 1, Col: 1, Rows: g.Rows - 2, Cols: g.Cols - 2}
		g.rooms = append(g.rooms, room)
		g.carveRoom(room)
	}

	grid, err := g.toGrid()
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("maze.rows", g.Rows),
		attribute.Int("maze.cols", g.Cols),
		attribute.Int("maze.room_count", len(g.rooms)),
		attribute.Int("maze.walls", grid.Count(maze.Wall)),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return grid, nil
}

// toGrid turns the carved layout into a maze grid with start and exit set.
func (g *Generator) toGrid() (*maze.Grid, error) {
	grid, err := maze.New(g.Rows, g.Cols)
	if err != nil {
		return nil, err
	}

	for r := range g.open {
		for c, open := range g.open[r] {
			if !open {
				if err := grid.SetWall(maze.Pos(r, c)); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := grid.SetStart(g.rooms[0].Center()); err != nil {
		return nil, err
	}
	if err := grid.SetExit(g.rooms[len(g.rooms)-1].Center()); err != nil {
		return nil, err
	}
	return grid, nil
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	row, col    int
	rows, cols  int
	left, right *bspNode
	room        *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (g *Generator) splitNode(node *bspNode) {
	if node.cols < minLeafSize*2 && node.rows < minLeafSize*2 {
		return
	}

	// Split across the longer side when it allows it
	var splitRows bool
	if node.cols > node.rows && node.cols >= minLeafSize*2 {
		splitRows = false
	} else if node.rows >= minLeafSize*2 {
		splitRows = true
	} else if node.cols >= minLeafSize*2 {
		splitRows = false
	} else {
		return
	}

	size := node.cols
	if splitRows {
		size = node.rows
	}
	lo, hi := minLeafSize, size-minLeafSize
	if hi <= lo {
		return
	}
	splitPos := lo + g.rng.Intn(hi-lo+1)

	if splitRows {
		node.left = &bspNode{row: node.row, col: node.col, rows: splitPos, cols: node.cols}
		node.right = &bspNode{row: node.row + splitPos, col: node.col, rows: node.rows - splitPos, cols: node.cols}
	} else {
		node.left = &bspNode{row: node.row, col: node.col, rows: node.rows, cols: splitPos}
		node.right = &bspNode{row: node.row, col: node.col + splitPos, rows: node.rows, cols: node.cols - splitPos}
	}

	g.splitNode(node.left)
	g.splitNode(node.right)
}

// createRooms creates rooms in leaf nodes of the BSP tree.
func (g *Generator) createRooms(node *bspNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		g.createRooms(node.left)
		g.createRooms(node.right)
		return
	}

	roomRows := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.rows-minRoomSize+1))
	roomCols := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.cols-minRoomSize+1))

	// Leave a one-cell margin inside the leaf
	roomRows = min(roomRows, node.rows-2)
	roomCols = min(roomCols, node.cols-2)
	if roomRows < minRoomSize || roomCols < minRoomSize {
		return
	}

	room := Room{
		Row:  node.row + 1 + g.rng.Intn(node.rows-roomRows-1),
		Col:  node.col + 1 + g.rng.Intn(node.cols-roomCols-1),
		Rows: roomRows,
		Cols: roomCols,
	}
	node.room = &room
	g.rooms = append(g.rooms, room)
	g.carveRoom(room)
}

// carveRoom opens every interior cell of the room.
func (g *Generator) carveRoom(room Room) {
	for r := room.Row; r < room.Row+room.Rows; r++ {
		for c := room.Col; c < room.Col+room.Cols; c++ {
			g.carve(r, c)
		}
	}
}

// carve opens one cell, never touching the outer wall.
func (g *Generator) carve(r, c int) {
	if r > 0 && r < g.Rows-1 && c > 0 && c < g.Cols-1 {
		g.open[r][c] = true
	}
}

// connectRooms joins sibling subtrees with corridors.
func (g *Generator) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	g.connectRooms(node.left)
	g.connectRooms(node.right)

	leftRoom := g.getRoom(node.left)
	rightRoom := g.getRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		g.carveCorridor(*leftRoom, *rightRoom)
	}
}

// getRoom returns a room from a subtree (any room will do).
func (g *Generator) getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := g.getRoom(node.left); room != nil {
		return room
	}
	return g.getRoom(node.right)
}

// carveCorridor creates an L-shaped corridor between two room centres.
func (g *Generator) carveCorridor(a, b Room) {
	from, to := a.Center(), b.Center()

	if g.rng.Intn(2) == 0 {
		g.carveRow(from.Col, to.Col, from.Row)
		g.carveColumn(from.Row, to.Row, to.Col)
	} else {
		g.carveColumn(from.Row, to.Row, from.Col)
		g.carveRow(from.Col, to.Col, to.Row)
	}
}

// carveRow opens cells c1..c2 on row r.
func (g *Generator) carveRow(c1, c2, r int) {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for c := c1; c <= c2; c++ {
		g.carve(r, c)
	}
}

// carveColumn opens cells r1..r2 in column c.
func (g *Generator) carveColumn(r1, r2, c int) {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for r := r1; r <= r2; r++ {
		g.carve(r, c)
	}
}
