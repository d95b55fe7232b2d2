// Package version implements the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/coursemap/internal/appcontext"
)

// NewCommand creates the version command with app dependencies.
// Build details are printed when the inherited --verbose flag is set.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "coursemap %s\n", app.Version())

			if verbose, err := cmd.Flags().GetBool("verbose"); err != nil || !verbose {
				return
			}
			fmt.Fprintf(out, "  commit:   %s\n", app.Commit())
			fmt.Fprintf(out, "  built:    %s\n", app.Date())
			fmt.Fprintf(out, "  built by: %s\n", app.BuiltBy())
			fmt.Fprintf(out, "  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
