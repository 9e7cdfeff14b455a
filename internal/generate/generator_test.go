package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/solver"
)

func TestGenerateReproducibility(t *testing.T) {
	// Generate two mazes with the same seed
	seed := int64(12345)
	ctx := context.Background()

	gen1 := NewSeeded(DefaultRows, DefaultCols, seed)
	gen2 := NewSeeded(DefaultRows, DefaultCols, seed)

	g1, err := gen1.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g2, err := gen2.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Verify same number of rooms
	if len(gen1.Rooms()) != len(gen2.Rooms()) {
		t.Fatalf("Room count mismatch: %d != %d", len(gen1.Rooms()), len(gen2.Rooms()))
	}

	// Verify rooms are in same positions
	for i := range gen1.Rooms() {
		r1, r2 := gen1.Rooms()[i], gen2.Rooms()[i]
		if r1 != r2 {
			t.Errorf("Room %d mismatch: %+v != %+v", i, r1, r2)
		}
	}

	// Verify cells are identical
	if g1.Render() != g2.Render() {
		t.Errorf("Grids differ for seed %d:\n%s\n%s", seed, g1.Render(), g2.Render())
	}

	s1, _ := g1.Start()
	s2, _ := g2.Start()
	if s1 != s2 {
		t.Errorf("Start mismatch: %s != %s", s1, s2)
	}
	e1, _ := g1.Exit()
	e2, _ := g2.Exit()
	if e1 != e2 {
		t.Errorf("Exit mismatch: %s != %s", e1, e2)
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	// Generate two mazes with different seeds - they should be different
	ctx := context.Background()

	g1, err := NewSeeded(DefaultRows, DefaultCols, 12345).Generate(ctx)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g2, err := NewSeeded(DefaultRows, DefaultCols, 54321).Generate(ctx)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Very unlikely to be identical by chance
	if g1.Render() == g2.Render() {
		t.Error("Different seeds produced identical mazes")
	}
}

func TestGenerateKeepsOuterWall(t *testing.T) {
	g, err := NewSeeded(15, 30, 7).Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	rows, cols := g.Dimensions()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r != 0 && r != rows-1 && c != 0 && c != cols-1 {
				continue
			}
			m, err := g.At(maze.Pos(r, c))
			if err != nil {
				t.Fatalf("At(%d,%d): %v", r, c, err)
			}
			if m != maze.Wall {
				t.Errorf("Border cell (%d,%d) is %v, want wall", r, c, m)
			}
		}
	}
}

func TestGenerateIsSolvable(t *testing.T) {
	sizes := [][2]int{{MinSize, MinSize}, {10, 10}, {DefaultRows, DefaultCols}, {40, 12}}

	for seed := int64(1); seed <= 20; seed++ {
		for _, size := range sizes {
			gen := NewSeeded(size[0], size[1], seed)
			g, err := gen.Generate(context.Background())
			if err != nil {
				t.Fatalf("seed %d size %v: Generate failed: %v", seed, size, err)
			}
			if len(gen.Rooms()) == 0 {
				t.Fatalf("seed %d size %v: no rooms", seed, size)
			}

			start, _ := g.Start()
			exit, _ := g.Exit()
			if !gen.Rooms()[0].Contains(start) {
				t.Errorf("seed %d size %v: start %s outside first room", seed, size, start)
			}
			if !g.IsOpen(start) || !g.IsOpen(exit) {
				t.Errorf("seed %d size %v: start or exit is not open", seed, size)
			}

			found, err := solver.FindPath(context.Background(), g)
			if err != nil {
				t.Fatalf("FindPath failed: %v", err)
			}
			if !found {
				t.Errorf("seed %d size %v: no path\n%s", seed, size, g.Render())
			}
		}
	}
}

func TestGenerateTooSmall(t *testing.T) {
	if _, err := NewSeeded(MinSize-1, 20, 1).Generate(context.Background()); !errors.Is(err, ErrTooSmall) {
		t.Errorf("Expected ErrTooSmall for too few rows, got %v", err)
	}
	if _, err := NewSeeded(20, 2, 1).Generate(context.Background()); !errors.Is(err, ErrTooSmall) {
		t.Errorf("Expected ErrTooSmall for too few columns, got %v", err)
	}
}

func TestRoomCenter(t *testing.T) {
	r := Room{Row: 2, Col: 4, Rows: 3, Cols: 5}

	if got := r.Center(); got != maze.Pos(3, 6) {
		t.Errorf("Center() = %s, want (3,6)", got)
	}
	if !r.Contains(r.Center()) {
		t.Error("Room does not contain its own centre")
	}
	if r.Contains(maze.Pos(5, 4)) {
		t.Error("Room contains (5,4), one row past its bottom edge")
	}
}
