package app

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentstation/coursemap/internal/cmd/output"
	"github.com/agentstation/coursemap/pkg/logging"
)

// Execute runs the coursemap CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	if a.stdin != nil {
		rootCmd.SetIn(a.stdin)
	}
	if a.stdout != nil {
		rootCmd.SetOut(a.stdout)
	}
	if a.stderr != nil {
		rootCmd.SetErr(a.stderr)
	}
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "coursemap",
		Short:   "Course catalog and prerequisite planner",
		Version: a.version,
		Long: `Coursemap loads a course catalog from a file and answers questions
about it: the full course list in course-number order, a single course with
its prerequisites, and which prerequisites refer to courses that do not exist.

Course files hold one course per line:

  CS201,Data Structures,CS101

YAML and JSON course documents are also accepted.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.ConfigFile, "config", "", "config file (default is $HOME/.coursemap.yaml)")
	flags.StringVarP(&a.flags.Source, "file", "f", "", "course file to load (env COURSEMAP_SOURCE)")
	flags.StringVarP(&a.flags.Format, "format", "o", "", "output format: table, wide, json, yaml, markdown")
	flags.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.flags.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")
	flags.StringVar(&a.flags.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("coursemap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It rereads the config
// file named by --config and applies the flags the user set.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if a.flags.ConfigFile != "" {
		config, err := LoadConfig(a.flags.ConfigFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.flags.changed = make(map[string]bool)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		a.flags.changed[f.Name] = true
	})
	a.config.UpdateFromFlags(&a.flags)

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	if a.config.NoColor {
		color.NoColor = true
	}

	logger := NewLogger(a.config, cmd.ErrOrStderr())
	a.logger = &logger
	cmd.SetContext(logging.WithOperation(logging.WithLogger(cmd.Context(), a.logger), cmd.Name()))

	return nil
}

// ExitOnError prints err and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
