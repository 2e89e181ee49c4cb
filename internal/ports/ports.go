// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The checkup service only talks to the operating system through these
// interfaces, so probes can be exercised in tests with stubbed measurements.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Probe, SystemStats)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"net"
	"time"

	"github.com/doeshing/hostcheck/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.hostcheck/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Probe queries one aspect of system state.
// A non-nil error means the probe is misconfigured and the run must stop;
// measurement problems are reported through the returned Reading instead.
type Probe interface {
	Name() string
	Probe(ctx context.Context) (domain.Reading, error)
}

// SystemStats reads raw host counters.
type SystemStats interface {
	// CPUPercent blocks for window and returns the average utilisation.
	CPUPercent(ctx context.Context, window time.Duration) (float64, error)
	MemoryPercent(ctx context.Context) (float64, error)
	DiskUsage(ctx context.Context, path string) (domain.DiskUsage, error)
}

// Dialer opens outbound connections. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// ReportExporter writes a finished report somewhere other than the terminal.
type ReportExporter interface {
	Export(domain.HealthReport) error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
