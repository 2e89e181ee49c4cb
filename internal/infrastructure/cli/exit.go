package cli

import (
	"errors"

	"github.com/doeshing/hostcheck/internal/infrastructure/cli/commands"
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return commands.ExitOK
	case errors.Is(err, commands.ErrChecksFailed):
		return commands.ExitChecksFail
	default:
		return commands.ExitFatalConfig
	}
}

// ShouldReport tells main whether err still needs printing. Failed checks
// have already been listed in the summary.
func ShouldReport(err error) bool {
	return err != nil && !errors.Is(err, commands.ErrChecksFailed)
}
