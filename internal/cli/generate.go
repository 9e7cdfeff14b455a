package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazewalk/internal/generate"
	"github.com/samdwyer/mazewalk/internal/maze"
	"github.com/samdwyer/mazewalk/internal/mazefile"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		rows   int
		cols   int
		seed   int64
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random solvable maze description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := newRunID()
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			tracer := telemetry.Tracer("cli")
			ctx, span := tracer.Start(cmd.Context(), "cli.generate")
			defer span.End()
			span.SetAttributes(
				attribute.String("run_id", runID),
				attribute.Int64("maze.seed", seed),
			)

			gen := generate.NewSeeded(rows, cols, seed)
			g, err := gen.Generate(ctx)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := mazefile.Encode(&buf, g); err != nil {
				return err
			}

			if output == "" {
				if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
					return err
				}
			} else if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write maze: %w", err)
			}

			a.log.WithFields(logrus.Fields{
				"run_id": runID,
				"seed":   seed,
				"rows":   rows,
				"cols":   cols,
				"rooms":  len(gen.Rooms()),
				"walls":  g.Count(maze.Wall),
				"output": output,
			}).Info("maze generated")
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", generate.DefaultRows, "number of rows")
	cmd.Flags().IntVar(&cols, "cols", generate.DefaultCols, "number of columns")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
