package commands

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/hostcheck/internal/app"
	"github.com/doeshing/hostcheck/internal/infrastructure/system"
	"github.com/doeshing/hostcheck/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build, platform and config file information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayVersionInformation(cmd.Context(), cmd.OutOrStdout(), container, system.Platform)
		},
	}
}

// displayVersionInformation prints what a bug report needs: the build, the
// host the probes measure, and which config file a run would read.
func displayVersionInformation(ctx context.Context, out io.Writer, container *app.Container, platform func(context.Context) (string, error)) error {
	fmt.Fprintf(out, "hostcheck %s (%s, %s/%s)\n", version.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if version.Commit != "" || version.BuildDate != "" {
		fmt.Fprintf(out, "Build: commit=%s date=%s\n", orUnknown(version.Commit), orUnknown(version.BuildDate))
	}

	host, err := platform(ctx)
	if err != nil {
		host = "unknown (" + err.Error() + ")"
	}
	fmt.Fprintf(out, "Platform: %s\n", host)

	loader, err := configLoader(container)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Config: %s\n", loader.Path())
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
