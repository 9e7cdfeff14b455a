// Package cli implements the mazewalk command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samdwyer/mazewalk/internal/logging"
	"github.com/samdwyer/mazewalk/internal/telemetry"
)

// app holds state shared by all subcommands of one invocation.
type app struct {
	configFile string
	cfg        *viper.Viper
	log        *logrus.Logger
	shutdown   func(context.Context) error
}

// NewRootCmd creates the top-level "mazewalk" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{log: logging.Discard()})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "mazewalk",
		Short: "Solve text mazes with depth-first search",
		Long: `mazewalk loads a maze description, searches for a route from the start
cell to the exit with depth-first backtracking, and prints the marked grid.`,
		Version: telemetry.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: ./mazewalk.yaml if present)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.String("theme", "", "colour theme for the interactive view")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newSamplesCmd())
	root.AddCommand(newThemesCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command with ctx and returns the error, if any.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return (&app{log: logging.Discard()}).execute(ctx, args, stdout, stderr)
}

func (a *app) execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)

	// PersistentPostRunE is skipped when a command fails; flush spans anyway.
	if cerr := a.close(context.WithoutCancel(ctx)); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// init loads configuration, builds the logger and starts telemetry if enabled.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}

	// Flags override config and environment when given.
	persistent := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		cfgKeyLogLevel:  "log-level",
		cfgKeyLogFormat: "log-format",
		cfgKeyTheme:     "theme",
	} {
		if f := persistent.Lookup(flag); f != nil && f.Changed {
			cfg.Set(key, f.Value.String())
		}
	}
	a.cfg = cfg

	log, err := logging.New(logging.Options{
		Level:  cfg.GetString(cfgKeyLogLevel),
		Format: cfg.GetString(cfgKeyLogFormat),
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = log

	if cfg.GetBool(cfgKeyTelemetryEnabled) {
		telemetry.ConfigureEnv(cfg.GetString(cfgKeyTelemetryEndpoint), cfg.GetString(cfgKeyTelemetryHeaders))
		shutdown, err := telemetry.Setup(cmd.Context())
		if err != nil {
			// Not fatal - commands still work without tracing
			a.log.WithError(err).Warn("telemetry setup failed")
		} else {
			a.shutdown = shutdown
		}
	}

	a.log.WithField("config", cfg.ConfigFileUsed()).Debug("configuration loaded")
	return nil
}

// close flushes telemetry. Only the first call shuts the provider down.
func (a *app) close(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	shutdown := a.shutdown
	a.shutdown = nil
	if err := shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown telemetry: %w", err)
	}
	return nil
}

// newRunID returns an identifier correlating the logs and spans of one command.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
