// Package commands implements the CLI commands for scrutineer.
package commands

import (
	"context"

	"github.com/Smattr/scrutineer/internal/app"
	"github.com/Smattr/scrutineer/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for scrutineer.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "scrutineer",
		Short:         "Empirically discover what a build rule really depends on",
		Long: "scrutineer audits an opaque build recipe by rebuilding a target while\n" +
			"selectively touching candidate dependency files, and reports which of\n" +
			"them actually provoke a rebuild.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newProbeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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
