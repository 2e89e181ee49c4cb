// Package checkup runs the host probes and assembles a HealthReport.
package checkup

import (
	"context"
	"fmt"
	"io"
	"time"

	configvalidator "github.com/doeshing/hostcheck/internal/application/config"
	"github.com/doeshing/hostcheck/internal/domain"
	"github.com/doeshing/hostcheck/internal/ports"
)

// Dependencies are the adapters the probes read from.
type Dependencies struct {
	Stats    ports.SystemStats
	Dialer   ports.Dialer
	Logger   ports.Logger
	Progress io.Writer
}

// Service executes probes sequentially, in declaration order.
type Service struct {
	Probes   []ports.Probe
	Progress io.Writer
	Logger   ports.Logger

	now func() time.Time
}

// NewService builds the probe list from cfg, leaving out skipped probes.
func NewService(cfg domain.Config, deps Dependencies) (*Service, error) {
	if err := configvalidator.ValidateSkip(cfg.Checks.Skip); err != nil {
		return nil, err
	}
	log := orNop(deps.Logger)

	var probes []ports.Probe
	for _, key := range domain.ProbeKeys() {
		if cfg.Skips(key) {
			log.Debug("probe skipped", map[string]interface{}{"probe": string(key)})
			continue
		}
		probe, err := buildProbe(key, cfg.Checks, deps, log)
		if err != nil {
			return nil, err
		}
		probes = append(probes, probe)
	}
	return &Service{Probes: probes, Progress: deps.Progress, Logger: log}, nil
}

func buildProbe(key domain.ProbeKey, checks domain.ChecksSettings, deps Dependencies, log ports.Logger) (ports.Probe, error) {
	switch key {
	case domain.ProbeReboot:
		return RebootProbe{MarkerPath: checks.Reboot.MarkerPath, Logger: log}, nil
	case domain.ProbeCPU:
		if deps.Stats == nil {
			return nil, fmt.Errorf("cpu probe: system stats unavailable")
		}
		return CPUProbe{
			Stats:            deps.Stats,
			ThresholdPercent: checks.CPU.ThresholdPercent,
			Window:           checks.CPU.SampleWindow,
			Logger:           log,
		}, nil
	case domain.ProbeMemory:
		if deps.Stats == nil {
			return nil, fmt.Errorf("memory probe: system stats unavailable")
		}
		return MemoryProbe{Stats: deps.Stats, ThresholdPercent: checks.Memory.ThresholdPercent, Logger: log}, nil
	case domain.ProbeDisk:
		if deps.Stats == nil {
			return nil, fmt.Errorf("disk probe: system stats unavailable")
		}
		return DiskSpaceProbe{Stats: deps.Stats, Path: checks.Disk.Path, ThresholdGB: checks.Disk.ThresholdGB}, nil
	case domain.ProbeNetwork:
		if deps.Dialer == nil {
			return nil, fmt.Errorf("network probe: dialer unavailable")
		}
		return NetworkProbe{
			Dialer:  deps.Dialer,
			Address: checks.Network.Address,
			Timeout: checks.Network.Timeout,
			Logger:  log,
		}, nil
	case domain.ProbeDiskFull:
		if deps.Stats == nil {
			return nil, fmt.Errorf("disk full probe: system stats unavailable")
		}
		return DiskFullProbe{Stats: deps.Stats, Path: checks.Disk.Path, FullPercent: checks.Disk.FullPercent}, nil
	default:
		return nil, fmt.Errorf("unknown probe %q", key)
	}
}

// Run executes every probe and returns a fresh report. A probe error stops the
// run; the report returned alongside it holds the checks completed so far.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	start := s.clock()
	report := domain.HealthReport{StartedAt: start}

	for _, probe := range s.Probes {
		if err := ctx.Err(); err != nil {
			report.Duration = s.clock().Sub(start)
			return report, err
		}

		probeStart := s.clock()
		reading, err := probe.Probe(ctx)
		// A reading taken while the run was being cancelled is not a measurement.
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.log().Warn("run cancelled", map[string]interface{}{"check": probe.Name()})
			report.Duration = s.clock().Sub(start)
			return report, ctxErr
		}
		if err != nil {
			s.log().Error("probe aborted run", err, map[string]interface{}{"check": probe.Name()})
			report.Duration = s.clock().Sub(start)
			return report, fmt.Errorf("%s: %w", probe.Name(), err)
		}

		s.progress(reading.Detail)
		result := domain.CheckResult{
			Name:     probe.Name(),
			Healthy:  reading.Healthy,
			Value:    reading.Value,
			Detail:   reading.Detail,
			Duration: s.clock().Sub(probeStart),
		}
		report.Checks = append(report.Checks, result)

		s.log().Debug("probe finished", map[string]interface{}{
			"check":    result.Name,
			"healthy":  result.Healthy,
			"value":    result.Value,
			"duration": result.Duration.String(),
		})
	}

	report.Duration = s.clock().Sub(start)
	s.log().Info("health check complete", map[string]interface{}{
		"passed": report.Passed(),
		"failed": report.Failed(),
	})
	return report, nil
}

func (s *Service) progress(line string) {
	if s.Progress == nil || line == "" {
		return
	}
	fmt.Fprintln(s.Progress, line)
}

func (s *Service) log() ports.Logger {
	return orNop(s.Logger)
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
