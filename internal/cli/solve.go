package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/solver"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

// Messages printed before the rendered grid.
const (
	msgFound    = "Path found...."
	msgNotFound = "Path not found...."
	msgReset    = "After reset...."
)

// solveOutput is the --json document.
type solveOutput struct {
	RunID      string          `json:"run_id"`
	Maze       string          `json:"maze"`
	Found      bool            `json:"found"`
	Route      []maze.Position `json:"route"`
	Tried      []maze.Position `json:"tried"`
	Visited    int             `json:"visited"`
	Backtracks int             `json:"backtracks"`
	Grid       []string        `json:"grid"`
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		showReset bool
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "solve <maze-file | sample:NAME>",
		Short: "Search a maze and print the marked grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := args[0]
			runID := newRunID()

			tracer := telemetry.Tracer("cli")
			ctx, span := tracer.Start(cmd.Context(), "cli.solve")
			defer span.End()
			span.SetAttributes(
				attribute.String("run_id", runID),
				attribute.String("maze.ref", ref),
			)

			g, err := loadGrid(ctx, ref)
			if err != nil {
				return err
			}

			res, err := solver.Search(ctx, g)
			if err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"run_id":     runID,
				"maze":       ref,
				"found":      res.Found,
				"visited":    res.Visited,
				"backtracks": res.Backtracks,
				"path_len":   len(res.Route),
			}).Info("search finished")

			out := cmd.OutOrStdout()
			if jsonOut {
				doc := solveOutput{
					RunID:      runID,
					Maze:       ref,
					Found:      res.Found,
					Route:      res.Route,
					Tried:      g.Positions(maze.Tried),
					Visited:    res.Visited,
					Backtracks: res.Backtracks,
					Grid:       strings.Split(strings.TrimSuffix(g.Render(), "\n"), "\n"),
				}
				if doc.Route == nil {
					doc.Route = []maze.Position{}
				}
				if doc.Tried == nil {
					doc.Tried = []maze.Position{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}

			if res.Found {
				fmt.Fprintln(out, msgFound)
			} else {
				fmt.Fprintln(out, msgNotFound)
			}
			fmt.Fprint(out, g.Render())

			if showReset {
				g.Reset()
				fmt.Fprintln(out, msgReset)
				fmt.Fprint(out, g.Render())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showReset, "reset", false, "also print the grid after clearing search marks")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print a JSON summary instead of text")
	return cmd
}
