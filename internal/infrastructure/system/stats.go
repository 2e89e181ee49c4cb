// Package system reads host counters through gopsutil.
package system

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/doeshing/hostcheck/internal/domain"
	"github.com/doeshing/hostcheck/internal/ports"
)

// Stats implements ports.SystemStats for the local host.
type Stats struct{}

// NewStats builds a Stats adapter.
func NewStats() *Stats {
	return &Stats{}
}

// CPUPercent blocks for window and returns utilisation across all cores.
func (s *Stats) CPUPercent(ctx context.Context, window time.Duration) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, errors.New("cpu: no samples returned")
	}
	return percents[0], nil
}

// MemoryPercent returns used physical memory as a percentage of the total.
func (s *Stats) MemoryPercent(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.UsedPercent, nil
}

// DiskUsage returns usage of the filesystem that contains path.
func (s *Stats) DiskUsage(ctx context.Context, path string) (domain.DiskUsage, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return domain.DiskUsage{}, err
	}
	return domain.DiskUsage{
		Path:        usage.Path,
		Total:       usage.Total,
		Free:        usage.Free,
		Used:        usage.Used,
		UsedPercent: usage.UsedPercent,
	}, nil
}

// Platform describes the host OS the probes read from, e.g.
// "ubuntu 24.04 (linux 6.8.0-45-generic, x86_64)".
func Platform(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if name == "" {
		name = info.OS
	}
	return fmt.Sprintf("%s (%s %s, %s)", name, info.OS, info.KernelVersion, info.KernelArch), nil
}

// NewDialer returns the dialer used by the connectivity probe.
func NewDialer(timeout time.Duration) *net.Dialer {
	return &net.Dialer{Timeout: timeout}
}

var (
	_ ports.SystemStats = (*Stats)(nil)
	_ ports.Dialer      = (*net.Dialer)(nil)
)
