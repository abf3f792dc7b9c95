// Package commands implements the CLI commands for the webbundle tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/webbundle/internal/app"
	"go.trai.ch/webbundle/internal/build"
)

// CLI represents the command line interface for webbundle.
type CLI struct {
	app        Application
	logControl LogControl
	rootCmd    *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Bundle(ctx context.Context, opts app.BundleOptions) error
}

// LogControl switches the logger between pretty and JSON output.
type LogControl interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. logControl may be nil,
// in which case --log-json has no effect.
func New(a Application, logControl LogControl) *CLI {
	rootCmd := &cobra.Command{
		Use:           "webbundle",
		Short:         "Bundle a wasm single-page application into static artifacts",
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

	c := &CLI{
		app:        a,
		logControl: logControl,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentFlags().Bool("log-json", false, "Log in JSON format instead of pretty output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logControl == nil {
			return
		}
		jsonMode, _ := cmd.Flags().GetBool("log-json")
		c.logControl.SetJSON(jsonMode)
	}

	rootCmd.AddCommand(c.newBundleCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
