package commands

import "errors"

// Process exit codes
const (
	ExitOK          = 0
	ExitChecksFail  = 1
	ExitFatalConfig = 2
)

// ErrChecksFailed is returned by the check command when at least one probe
// reported unhealthy. The summary has already been printed at that point.
var ErrChecksFailed = errors.New("health checks failed")

// Error messages
const (
	ErrConfigLoaderUnavailable = "config loader unavailable"
	ErrContainerUnavailable    = "container unavailable"
)

// Success messages
const (
	MsgConfigurationValid = "Configuration valid"
	MsgAllChecksPassed    = "✓ All health checks passed!"
)

const reportHeader = "=== Laptop Health Check ==="
