// Package show implements the show command.
package show

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/coursemap/internal/appcontext"
	"github.com/agentstation/coursemap/internal/cmd/output"
	"github.com/agentstation/coursemap/pkg/errors"
)

// NewCommand creates the show command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "show <course-id>",
		GroupID: "core",
		Short:   "Show a course and its prerequisites",
		Aliases: []string{"get"},
		Args:    cobra.ExactArgs(1),
		Example: `  coursemap show CS201 -f courses.csv
  coursemap get CS201 -f courses.csv -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			course, err := cat.Get(strings.TrimSpace(args[0]))
			if errors.IsEmptyCatalog(err) {
				return appcontext.EmptyCatalogError(app)
			}
			if err != nil {
				return err
			}

			return output.Render(cmd.OutOrStdout(), output.Format(app.OutputFormat()),
				output.CourseToData(course), course)
		},
	}
}
