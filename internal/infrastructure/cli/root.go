package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/hostcheck/internal/app"
	"github.com/doeshing/hostcheck/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Running it without a subcommand
// runs the health checks.
func NewRootCmd(opts Options) *cobra.Command {
	container := &app.Container{}
	settings := app.Settings{Verbose: opts.Verbose}

	root := &cobra.Command{
		Use:   "hostcheck",
		Short: "Local host health checks",
		Long: "hostcheck checks for a pending reboot, CPU load, memory usage, free disk space " +
			"and internet reachability, prints a summary and exits non-zero if any check fails.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return container.Configure(cmd.Context(), settings)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&settings.ConfigPath, "config", "", "Config file (default ~/.hostcheck/config.yaml)")
	root.PersistentFlags().BoolVarP(&settings.Verbose, "verbose", "v", opts.Verbose, "Log probe details to stderr")

	commands.AttachCheck(root, container)
	root.AddCommand(commands.NewCheckCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewVersionCommand(container))
	return root
}
