// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/coursemap/internal/appcontext"
	"github.com/agentstation/coursemap/internal/cmd/output"
	"github.com/agentstation/coursemap/pkg/errors"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Short:   "List all courses in course-number order",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  coursemap list -f courses.csv
  coursemap list -f courses.csv -o wide
  COURSEMAP_SOURCE=courses.yaml coursemap list -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			all, err := cat.List()
			if errors.IsEmptyCatalog(err) {
				return appcontext.EmptyCatalogError(app)
			}
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			app.Logger().Debug().Int("courses", len(all)).Msg("Listing courses")
			return output.Render(cmd.OutOrStdout(), format,
				output.CoursesToData(all, format == output.FormatWide), all)
		},
	}
}
