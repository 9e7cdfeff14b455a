package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/solver"
	"github.com/samdwyer/mazewalk/internal/telemetry"
	"github.com/samdwyer/mazewalk/internal/theme"
	"github.com/samdwyer/mazewalk/internal/ui"
)

// Viewer holds the interactive session state.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	grid     *maze.Grid
	cfg      Config
	state    State
	result   solver.Result
	message  string
	running  bool
}

// New creates a viewer for grid on the given screen.
func New(screen *ui.Screen, grid *maze.Grid, cfg Config) *Viewer {
	if cfg.Palette == nil {
		cfg.Palette = theme.MustLoadRegistry().GetByID(theme.DefaultID).Palette()
	}
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.Palette),
		grid:     grid,
		cfg:      cfg,
		state:    StateUnsolved,
		running:  true,
	}
}

// State returns the current viewer state.
func (v *Viewer) State() State {
	return v.state
}

// Run executes the input loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.session")
	defer span.End()

	rows, cols := v.grid.Dimensions()
	span.SetAttributes(
		attribute.String("viewer.title", v.cfg.Title),
		attribute.Int("maze.rows", rows),
		attribute.Int("maze.cols", cols),
	)

	if v.cfg.SolveOnStart {
		if err := v.solve(ctx); err != nil {
			v.screen.Close()
			return err
		}
	}

	for v.running {
		v.renderer.Render(v.grid, v.status())

		// Blocks until the next terminal event
		v.handleInput(ctx)
	}

	v.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// Screen finalized
		v.running = false
	}
}

// handleKeyEvent maps keys to commands.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyEnter:
		v.handleCommand(ctx, 's')
	case tcell.KeyRune:
		v.handleCommand(ctx, ev.Rune())
	}
}

// handleCommand runs a single-letter command: s solves, r resets, q quits.
func (v *Viewer) handleCommand(ctx context.Context, cmd rune) {
	switch cmd {
	case 's', 'S':
		if err := v.solve(ctx); err != nil {
			v.message = err.Error()
		}
	case 'r', 'R':
		v.reset()
	case 'q', 'Q':
		v.running = false
	}
}

// solve searches the grid from a clean state.
func (v *Viewer) solve(ctx context.Context) error {
	v.grid.Reset()
	res, err := solver.Search(ctx, v.grid)
	if err != nil {
		v.state = StateUnsolved
		return err
	}

	v.result = res
	v.message = ""
	if res.Found {
		v.state = StateSolved
	} else {
		v.state = StateNoPath
	}
	return nil
}

// reset clears search marks.
func (v *Viewer) reset() {
	v.grid.Reset()
	v.state = StateUnsolved
	v.result = solver.Result{}
	v.message = ""
}

// status builds the line shown under the grid.
func (v *Viewer) status() string {
	if v.message != "" {
		return fmt.Sprintf("%s | %s | s:solve r:reset q:quit", v.cfg.Title, v.message)
	}
	switch v.state {
	case StateSolved:
		return fmt.Sprintf("%s | path found: %d cells, %d tried | s:solve r:reset q:quit",
			v.cfg.Title, len(v.result.Route), v.result.Backtracks)
	case StateNoPath:
		return fmt.Sprintf("%s | path not found: %d tried | s:solve r:reset q:quit",
			v.cfg.Title, v.result.Backtracks)
	default:
		return fmt.Sprintf("%s | %s | s:solve r:reset q:quit", v.cfg.Title, v.state)
	}
}
