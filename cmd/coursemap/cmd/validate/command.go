// Package validate implements the validate command.
package validate

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentstation/coursemap/internal/appcontext"
	"github.com/agentstation/coursemap/internal/cmd/output"
	"github.com/agentstation/coursemap/pkg/errors"
)

// NewCommand creates the validate command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "core",
		Short:   "Check that every prerequisite names a loaded course",
		Long: `Validate cross-checks the whole catalog and lists every prerequisite
that does not name a loaded course.

Unresolved prerequisites are warnings; with --strict they make the command
exit with a non-zero status.`,
		Args: cobra.NoArgs,
		Example: `  coursemap validate -f courses.csv
  coursemap validate -f courses.csv --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			if cat.IsEmpty() {
				return appcontext.EmptyCatalogError(app)
			}

			report := cat.Validate()
			format := output.Format(app.OutputFormat())

			switch {
			case format.IsStructured():
				if err := output.Render(cmd.OutOrStdout(), format, output.Data{}, report); err != nil {
					return err
				}
			case report.Valid():
				fmt.Fprintf(cmd.OutOrStdout(), "All prerequisites are valid (%d of %d courses have prerequisites).\n", report.Checked, cat.Len())
			default:
				color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(),
					"%d unresolved prerequisites found\n", len(report.Warnings))
				if err := output.Render(cmd.OutOrStdout(), format, output.ValidationToData(report), report); err != nil {
					return err
				}
			}

			if strict && !report.Valid() {
				return fmt.Errorf("validation failed with %d warnings: %w", len(report.Warnings), errors.ErrUnresolvedReference)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any prerequisite is unresolved")

	return cmd
}
