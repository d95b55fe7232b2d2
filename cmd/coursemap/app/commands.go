package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/coursemap/cmd/coursemap/cmd/list"
	"github.com/agentstation/coursemap/cmd/coursemap/cmd/load"
	"github.com/agentstation/coursemap/cmd/coursemap/cmd/menu"
	"github.com/agentstation/coursemap/cmd/coursemap/cmd/show"
	"github.com/agentstation/coursemap/cmd/coursemap/cmd/validate"
	"github.com/agentstation/coursemap/cmd/coursemap/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(load.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(menu.NewCommand(a))

	rootCmd.AddCommand(version.NewCommand(a))
}
