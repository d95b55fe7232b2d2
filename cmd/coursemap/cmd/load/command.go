// Package load implements the load command.
package load

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentstation/coursemap/internal/appcontext"
	"github.com/agentstation/coursemap/internal/cmd/output"
	"github.com/agentstation/coursemap/pkg/loader"
)

// NewCommand creates the load command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "load <file>",
		GroupID: "core",
		Short:   "Load a course file and report what was accepted",
		Long: `Load parses a course file into the catalog and prints a summary:
how many courses were loaded, how many lines failed to parse, duplicates
that were ignored, and prerequisites that refer to unknown courses.

Malformed lines and unknown prerequisites are warnings. Only a file that
cannot be read makes the command fail.`,
		Args: cobra.ExactArgs(1),
		Example: `  coursemap load courses.csv
  coursemap load catalog.yaml -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			report, err := app.Loader().LoadInto(cat, args[0])
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			if format.IsStructured() {
				return output.Render(cmd.OutOrStdout(), format, output.Data{}, report)
			}

			printWarnings(cmd.ErrOrStderr(), report)
			return output.Render(cmd.OutOrStdout(), format, output.ReportToData(report), report)
		},
	}
}

// printWarnings lists parse errors and unresolved prerequisites.
func printWarnings(w io.Writer, report *loader.Report) {
	warn := color.New(color.FgYellow)
	for _, perr := range report.ParseErrors {
		warn.Fprintf(w, "warning: %s\n", perr)
	}
	for _, perr := range report.Load.Diagnostics {
		warn.Fprintf(w, "warning: %s\n", perr)
	}
	if report.Load.Validation == nil {
		return
	}
	for _, ref := range report.Load.Validation.Warnings {
		warn.Fprintf(w, "warning: %s\n", ref)
	}
}
