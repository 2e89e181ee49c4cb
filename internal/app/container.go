package app

import (
	"context"
	"io"

	"github.com/doeshing/hostcheck/internal/application/checkup"
	"github.com/doeshing/hostcheck/internal/domain"
	"github.com/doeshing/hostcheck/internal/infrastructure/config"
	"github.com/doeshing/hostcheck/internal/infrastructure/metrics"
	"github.com/doeshing/hostcheck/internal/infrastructure/system"
	"github.com/doeshing/hostcheck/internal/pkg/logger"
	"github.com/doeshing/hostcheck/internal/ports"
)

// Settings are the process-level options known before any command runs.
type Settings struct {
	ConfigPath string
	Verbose    bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	ConfigLoader   *config.FileLoader
	ConfigProvider ports.ConfigProvider
	Stats          ports.SystemStats
	// Dialer overrides the network probe dialer; nil means a fresh net.Dialer per run.
	Dialer ports.Dialer
	Logger *logger.ZapLogger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, settings Settings) (*Container, error) {
	c := &Container{}
	if err := c.Configure(ctx, settings); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure (re)builds the adapters in place so commands created before flag
// parsing see the final settings.
func (c *Container) Configure(_ context.Context, settings Settings) error {
	loader := config.NewFileLoader(settings.ConfigPath)
	c.ConfigLoader = loader
	c.ConfigProvider = loader
	c.Stats = system.NewStats()
	c.Logger = logger.New(settings.Verbose)
	return nil
}

// CheckupService builds a health checker for one run of cfg.
func (c *Container) CheckupService(cfg domain.Config, progress io.Writer) (*checkup.Service, error) {
	dialer := c.Dialer
	if dialer == nil {
		dialer = system.NewDialer(cfg.Checks.Network.Timeout)
	}
	var log ports.Logger
	if c.Logger != nil {
		log = c.Logger
	}
	return checkup.NewService(cfg, checkup.Dependencies{
		Stats:    c.Stats,
		Dialer:   dialer,
		Logger:   log,
		Progress: progress,
	})
}

// ReportExporter returns the textfile exporter for path.
func (c *Container) ReportExporter(path string) ports.ReportExporter {
	return metrics.NewTextfileExporter(path)
}
