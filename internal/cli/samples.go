package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/mazewalk/data"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

func newSamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples [name]",
		Short: "List embedded sample mazes, or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range data.Names() {
					fmt.Fprintln(out, samplePrefix+name)
				}
				return nil
			}

			content, err := data.Read(args[0])
			if err != nil {
				return err
			}
			_, err = out.Write(content)
			return err
		},
	}
}

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List colour themes for the interactive view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := a.themeRegistry()
			if err != nil {
				return err
			}

			current := a.cfg.GetString(cfgKeyTheme)
			for _, id := range registry.IDs() {
				marker := " "
				if id == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, id, registry.GetByID(id).Name)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mazewalk version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "mazewalk", telemetry.Version)
		},
	}
}
