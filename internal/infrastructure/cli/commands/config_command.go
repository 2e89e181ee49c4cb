package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/hostcheck/internal/app"
	configvalidator "github.com/doeshing/hostcheck/internal/application/config"
	"github.com/doeshing/hostcheck/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with its subcommands
func NewConfigCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialise the hostcheck configuration",
	}
	cmd.AddCommand(newConfigShowCommand(container))
	cmd.AddCommand(newConfigInitCommand(container))
	cmd.AddCommand(newConfigValidateCommand(container))
	cmd.AddCommand(newConfigPathCommand(container))
	return cmd
}

func newConfigShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (defaults, file and environment merged)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := configLoader(container)
			if err != nil {
				return err
			}
			cfg, err := loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			raw, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}

func newConfigInitCommand(container *app.Container) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := configLoader(container)
			if err != nil {
				return err
			}
			path, err := loader.WriteDefault(force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigValidateCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration without running checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfiguration(cmd, cmd.OutOrStdout(), container)
		},
	}
}

func newConfigPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := configLoader(container)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loader.Path())
			return nil
		},
	}
}

// validateConfiguration loads and validates the configuration
func validateConfiguration(cmd *cobra.Command, out io.Writer, container *app.Container) error {
	loader, err := configLoader(container)
	if err != nil {
		return err
	}
	cfg, err := loader.Load(cmd.Context())
	if err != nil {
		return err
	}
	if err := configvalidator.Validate(cfg); err != nil {
		return err
	}
	fmt.Fprintln(out, MsgConfigurationValid)
	return nil
}

func configLoader(container *app.Container) (*config.FileLoader, error) {
	if container == nil || container.ConfigLoader == nil {
		return nil, errors.New(ErrConfigLoaderUnavailable)
	}
	return container.ConfigLoader, nil
}
