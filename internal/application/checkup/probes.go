package checkup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/hostcheck/internal/domain"
	"github.com/doeshing/hostcheck/internal/pkg/logger"
	"github.com/doeshing/hostcheck/internal/ports"
)

// RebootProbe is unhealthy while the OS marker for a deferred restart exists.
type RebootProbe struct {
	MarkerPath string
	Logger     ports.Logger
}

func (p RebootProbe) Name() string { return domain.CheckReboot }

func (p RebootProbe) Probe(context.Context) (domain.Reading, error) {
	pending, err := markerExists(p.MarkerPath)
	if err != nil {
		// Only a successful stat proves the marker is there.
		orNop(p.Logger).Warn("reboot marker unreadable, assuming no reboot pending", map[string]interface{}{
			"path":  p.MarkerPath,
			"error": err.Error(),
		})
	}
	if pending {
		return domain.Reading{Healthy: false, Value: 1, Detail: "Reboot Marker: present"}, nil
	}
	return domain.Reading{Healthy: true, Detail: "Reboot Marker: absent", Cause: err}, nil
}

func markerExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// CPUProbe samples CPU utilisation over Window.
type CPUProbe struct {
	Stats            ports.SystemStats
	ThresholdPercent float64
	Window           time.Duration
	Logger           ports.Logger
}

func (p CPUProbe) Name() string { return domain.CheckCPU }

func (p CPUProbe) Probe(ctx context.Context) (domain.Reading, error) {
	usage, err := p.Stats.CPUPercent(ctx, p.Window)
	if err != nil {
		orNop(p.Logger).Warn("cpu usage unavailable", map[string]interface{}{"error": err.Error()})
		return unavailable("CPU Usage", err), nil
	}
	return domain.Reading{
		Healthy: below(usage, p.ThresholdPercent),
		Value:   usage,
		Detail:  fmt.Sprintf("CPU Usage: %.1f%%", usage),
	}, nil
}

// MemoryProbe reads used physical memory as a percentage of the total.
type MemoryProbe struct {
	Stats            ports.SystemStats
	ThresholdPercent float64
	Logger           ports.Logger
}

func (p MemoryProbe) Name() string { return domain.CheckMemory }

func (p MemoryProbe) Probe(ctx context.Context) (domain.Reading, error) {
	usage, err := p.Stats.MemoryPercent(ctx)
	if err != nil {
		orNop(p.Logger).Warn("memory usage unavailable", map[string]interface{}{"error": err.Error()})
		return unavailable("Memory Usage", err), nil
	}
	return domain.Reading{
		Healthy: below(usage, p.ThresholdPercent),
		Value:   usage,
		Detail:  fmt.Sprintf("Memory Usage: %.1f%%", usage),
	}, nil
}

// DiskSpaceProbe requires more than ThresholdGB free on the filesystem holding Path.
type DiskSpaceProbe struct {
	Stats       ports.SystemStats
	Path        string
	ThresholdGB float64
}

func (p DiskSpaceProbe) Name() string { return domain.CheckDisk }

func (p DiskSpaceProbe) Probe(ctx context.Context) (domain.Reading, error) {
	usage, err := diskUsage(ctx, p.Stats, p.Path)
	if err != nil {
		return domain.Reading{}, err
	}
	free := usage.FreeGB()
	return domain.Reading{
		Healthy: above(free, p.ThresholdGB),
		Value:   free,
		Detail:  fmt.Sprintf("Disk Free Space: %.2fGB", free),
	}, nil
}

// DiskFullProbe fails once the filesystem holding Path is FullPercent used.
type DiskFullProbe struct {
	Stats       ports.SystemStats
	Path        string
	FullPercent float64
}

func (p DiskFullProbe) Name() string { return domain.CheckDiskFull }

func (p DiskFullProbe) Probe(ctx context.Context) (domain.Reading, error) {
	usage, err := diskUsage(ctx, p.Stats, p.Path)
	if err != nil {
		return domain.Reading{}, err
	}
	return domain.Reading{
		Healthy: below(usage.UsedPercent, p.FullPercent),
		Value:   usage.UsedPercent,
		Detail:  fmt.Sprintf("Disk Used: %.1f%% of %s", usage.UsedPercent, humanize.IBytes(usage.Total)),
	}, nil
}

// diskUsage treats any failure as a configuration error: the path is
// user-supplied and there is no safe default answer for it.
func diskUsage(ctx context.Context, stats ports.SystemStats, path string) (domain.DiskUsage, error) {
	if _, err := os.Stat(path); err != nil {
		return domain.DiskUsage{}, &domain.ConfigError{Field: "checks.disk.path", Value: path, Err: err}
	}
	usage, err := stats.DiskUsage(ctx, path)
	if err != nil {
		return domain.DiskUsage{}, &domain.ConfigError{Field: "checks.disk.path", Value: path, Err: err}
	}
	return usage, nil
}

// NetworkProbe opens one TCP connection to a sentinel host.
type NetworkProbe struct {
	Dialer  ports.Dialer
	Address string
	Timeout time.Duration
	Logger  ports.Logger
}

func (p NetworkProbe) Name() string { return domain.CheckNetwork }

func (p NetworkProbe) Probe(ctx context.Context) (domain.Reading, error) {
	if err := dialOnce(ctx, p.Dialer, p.Address, p.Timeout); err != nil {
		orNop(p.Logger).Debug("sentinel unreachable", map[string]interface{}{
			"address": p.Address,
			"error":   err.Error(),
		})
		return domain.Reading{Healthy: false, Detail: "Network: Disconnected", Cause: err}, nil
	}
	return domain.Reading{Healthy: true, Value: 1, Detail: "Network: Connected"}, nil
}

func dialOnce(ctx context.Context, dialer ports.Dialer, address string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}

func orNop(l ports.Logger) ports.Logger {
	if l == nil {
		return logger.NewNop()
	}
	return l
}

func unavailable(label string, err error) domain.Reading {
	return domain.Reading{Healthy: true, Detail: label + ": unavailable", Cause: err}
}

func below(value, threshold float64) bool {
	return value < threshold
}

func above(value, threshold float64) bool {
	return value > threshold
}

var (
	_ ports.Probe = RebootProbe{}
	_ ports.Probe = CPUProbe{}
	_ ports.Probe = MemoryProbe{}
	_ ports.Probe = DiskSpaceProbe{}
	_ ports.Probe = DiskFullProbe{}
	_ ports.Probe = NetworkProbe{}
)
