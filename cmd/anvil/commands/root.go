// Package commands implements the CLI commands for the anvil build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/anvil/internal/app"
	"go.trai.ch/anvil/internal/build"
	"go.trai.ch/anvil/internal/core/domain"
)

// CLI represents the command line interface for anvil.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, targetNames []string, opts app.RunOptions) error
	Targets(ctx context.Context, opts app.Options) ([]app.TargetInfo, error)
	Types(ctx context.Context, opts app.Options) ([]app.TypeInfo, error)
	History(ctx context.Context, opts app.Options) ([]domain.TargetRecord, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "anvil",
		Short:         "A declarative build orchestration engine",
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
	flags.StringP("file", "f", "", "Project file (default: nearest "+domain.ProjectFileName+")")
	flags.String("lib-dir", "", "Directory scanned for libraries on demand (default: $"+domain.LibDirEnv+")")
	flags.String("journal", "", "Run journal path (default: <basedir>/.anvil/journal.json)")
	flags.Bool("json", false, "Write logs and listings as JSON")
	flags.BoolP("verbose", "v", false, "Show debug output")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newTypesCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
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

// options reads the persistent flags shared by every command.
func options(cmd *cobra.Command) app.Options {
	file, _ := cmd.Flags().GetString("file")
	libDir, _ := cmd.Flags().GetString("lib-dir")
	journal, _ := cmd.Flags().GetString("journal")
	jsonOut, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return app.Options{
		File:        file,
		LibDir:      libDir,
		JournalPath: journal,
		JSON:        jsonOut,
		Verbose:     verbose,
	}
}
