// Package solver finds a route through a maze grid by depth-first search
// with explicit backtracking.
package solver

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

// Result describes the outcome of a search.
type Result struct {
	Found      bool            `json:"found"`
	Route      []maze.Position `json:"route,omitempty"` // cells left marked Path, in discovery order; set only when Found
	Visited    int             `json:"visited"`         // cells entered and marked Path
	Backtracks int             `json:"backtracks"`      // cells abandoned and marked Tried
}

// FindPath reports whether the exit of g can be reached from its start.
// On success the route is left marked Path. Dead-end cells are marked Tried;
// the branch that led to a dead end keeps its Path marks.
func FindPath(ctx context.Context, g *maze.Grid) (bool, error) {
	res, err := Search(ctx, g)
	return res.Found, err
}

// Search runs the same search as FindPath and also returns visit counts.
func Search(ctx context.Context, g *maze.Grid) (Result, error) {
	tracer := telemetry.Tracer("solver")
	ctx, span := tracer.Start(ctx, "solver.find_path")
	defer span.End()

	rows, cols := g.Dimensions()
	span.SetAttributes(
		attribute.Int("maze.rows", rows),
		attribute.Int("maze.cols", cols),
	)

	s := &search{grid: g}
	res, err := s.run(ctx)

	span.SetAttributes(
		attribute.Bool("search.found", res.Found),
		attribute.Int("search.visited", res.Visited),
		attribute.Int("search.backtracks", res.Backtracks),
		attribute.Int("search.route_len", len(res.Route)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return res, err
}

// search holds the two stacks for one run over a grid.
type search struct {
	grid     *maze.Grid
	frontier stack[maze.Position] // candidates, most recently discovered on top
	route    stack[maze.Position] // cells marked Path, believed to be on the route
	result   Result
}

func (s *search) run(ctx context.Context) (Result, error) {
	start, okStart := s.grid.Start()
	exit, okExit := s.grid.Exit()
	if !okStart || !okExit {
		return s.result, fmt.Errorf("find path: %w", maze.ErrNotConfigured)
	}

	s.frontier.push(start)
	for !s.frontier.empty() {
		if err := ctx.Err(); err != nil {
			return s.result, err
		}

		p, _ := s.frontier.pop()

		if p == exit {
			m, err := s.grid.At(p)
			if err != nil {
				return s.result, err
			}
			// A walled exit is unreachable; the search never overwrites walls.
			if m != maze.Wall {
				if err := s.grid.Mark(p, maze.Path); err != nil {
					return s.result, err
				}
				s.result.Found = true
				s.result.Route = append(append([]maze.Position(nil), s.route.items...), p)
				return s.result, nil
			}
		}

		// Anything already marked, including a cell pushed back by a
		// backtrack, is dropped.
		if !s.grid.IsOpen(p) {
			continue
		}

		if err := s.grid.Mark(p, maze.Path); err != nil {
			return s.result, err
		}
		s.route.push(p)
		s.result.Visited++
		if err := s.expand(p); err != nil {
			return s.result, err
		}
	}

	return s.result, nil
}

// expand pushes every open neighbour of p onto the frontier, in neighbour
// order. When none is open, p is a dead end and the search backtracks.
func (s *search) expand(p maze.Position) error {
	neighbors, err := s.grid.Neighbors(p)
	if err != nil {
		return err
	}

	pushed := 0
	for _, n := range neighbors {
		if s.grid.IsOpen(n) {
			s.frontier.push(n)
			pushed++
		}
	}

	if pushed == 0 {
		return s.backtrack()
	}
	return nil
}

// backtrack abandons the top of the route and pushes the cell before it back
// onto the frontier.
func (s *search) backtrack() error {
	last, ok := s.route.pop()
	if !ok {
		return nil
	}
	if err := s.grid.Mark(last, maze.Tried); err != nil {
		return err
	}
	s.result.Backtracks++

	// An exhausted route leaves nothing to resume from.
	if prev, ok := s.route.peek(); ok {
		s.frontier.push(prev)
	}
	return nil
}
