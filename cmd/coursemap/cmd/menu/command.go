// Package menu implements the interactive menu command.
package menu

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentstation/coursemap/internal/appcontext"
	console "github.com/agentstation/coursemap/internal/cmd/menu"
)

// NewCommand creates the menu command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		GroupID: "core",
		Short:   "Start the interactive course planner",
		Long: `Menu starts the interactive course planner. It loads course files,
prints the sorted course list, and looks up single courses until you
choose Exit or input ends.

A file given with --file is loaded before the menu starts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			m := console.New(cat, app.Loader(), cmd.InOrStdin(), cmd.OutOrStdout(),
				console.WithLogger(app.Logger()),
				console.WithColor(!color.NoColor),
			)

			if err := m.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
