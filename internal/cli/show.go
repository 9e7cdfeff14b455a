package cli

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/mazewalk/internal/ui"
	"github.com/samdwyer/mazewalk/internal/viewer"
)

func newShowCmd(a *app) *cobra.Command {
	var solve bool

	cmd := &cobra.Command{
		Use:   "show <maze-file | sample:NAME>",
		Short: "Open a maze in the interactive terminal view",
		Long: `Open a maze in the interactive terminal view.

Keys: s or Enter solves, r resets, q or Esc quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			g, err := loadGrid(ctx, args[0])
			if err != nil {
				return err
			}

			palette, err := a.palette()
			if err != nil {
				return err
			}

			screen, err := ui.NewScreen()
			if err != nil {
				return err
			}

			a.log.WithField("maze", args[0]).WithField("theme", palette.ID).Debug("opening viewer")

			v := viewer.New(screen, g, viewer.Config{
				Title:        args[0],
				Palette:      palette,
				SolveOnStart: solve,
			})
			return v.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&solve, "solve", false, "solve before drawing the first frame")
	return cmd
}
