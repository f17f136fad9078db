// Package commands implements the CLI commands for mlpot.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mlpot/internal/app"
	"go.trai.ch/mlpot/internal/build"
)

// CLI represents the command line interface for mlpot.
type CLI struct {
	app           Application
	rootCmd       *cobra.Command
	traceShutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Evaluate(ctx context.Context, opts app.EvalOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	CheckForces(ctx context.Context, opts app.CheckForcesOptions) (app.ForceCheck, error)
	ConfigureLogging(json, verbose bool)
	EnableTracing(w io.Writer) (func(context.Context) error, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mlpot",
		Short:         "Energies and forces from machine-learned interatomic potentials",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "mlpot.yaml", "Path to configuration file")
	flags.Bool("json-logs", false, "Write logs as JSON")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.Bool("trace", false, "Write calculator spans to stderr")
	flags.String("backend", "", "Override the configured backend (plain or gradient)")
	flags.Bool("forces", false, "Enable forces regardless of the configuration")
	flags.Bool("no-cache", false, "Disable result caching")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.setup
	rootCmd.PersistentPostRunE = c.teardown

	rootCmd.AddCommand(c.newEvalCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCheckForcesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	verbose, _ := cmd.Flags().GetBool("verbose")
	c.app.ConfigureLogging(jsonLogs, verbose)

	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		shutdown, err := c.app.EnableTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		c.traceShutdown = shutdown
	}
	return nil
}

func (c *CLI) teardown(cmd *cobra.Command, _ []string) error {
	if c.traceShutdown == nil {
		return nil
	}
	shutdown := c.traceShutdown
	c.traceShutdown = nil
	return shutdown(context.WithoutCancel(cmd.Context()))
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

func overrides(cmd *cobra.Command) app.Overrides {
	backend, _ := cmd.Flags().GetString("backend")
	forces, _ := cmd.Flags().GetBool("forces")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	return app.Overrides{
		Backend:      backend,
		EnableForces: forces,
		NoCache:      noCache,
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
