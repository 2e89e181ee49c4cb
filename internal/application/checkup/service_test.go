package checkup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configvalidator "github.com/doeshing/hostcheck/internal/application/config"
	"github.com/doeshing/hostcheck/internal/domain"
)

func testConfig(t *testing.T) domain.Config {
	t.Helper()
	cfg := domain.DefaultConfig()
	cfg.Checks.Reboot.MarkerPath = filepath.Join(t.TempDir(), "reboot-required")
	cfg.Checks.Disk.Path = t.TempDir()
	return cfg
}

func newTestService(t *testing.T, cfg domain.Config, stats *stubStats, dialer *stubDialer) (*Service, *bytes.Buffer) {
	t.Helper()
	var progress bytes.Buffer
	svc, err := NewService(cfg, Dependencies{Stats: stats, Dialer: dialer, Progress: &progress})
	require.NoError(t, err)
	return svc, &progress
}

func TestServiceRunAllHealthy(t *testing.T) {
	svc, progress := newTestService(t, testConfig(t), healthyStats(), &stubDialer{})

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Passed())
	assert.Empty(t, report.Failed())

	var names []string
	for _, check := range report.Checks {
		names = append(names, check.Name)
	}
	assert.Equal(t, []string{
		domain.CheckReboot,
		domain.CheckCPU,
		domain.CheckMemory,
		domain.CheckDisk,
		domain.CheckNetwork,
		domain.CheckDiskFull,
	}, names)

	lines := strings.Split(strings.TrimSpace(progress.String()), "\n")
	assert.Equal(t, []string{
		"Reboot Marker: absent",
		"CPU Usage: 10.0%",
		"Memory Usage: 20.0%",
		"Disk Free Space: 50.00GB",
		"Network: Connected",
		"Disk Used: 75.0% of 200 GiB",
	}, lines)
}

func TestServiceRunRebootPending(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Checks.Reboot.MarkerPath, nil, 0o644))
	svc, _ := newTestService(t, cfg, healthyStats(), &stubDialer{})

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Passed())
	assert.Equal(t, []string{domain.CheckReboot}, report.Failed())
}

func TestServiceRunHighCPUDoesNotStopOtherProbes(t *testing.T) {
	stats := healthyStats()
	stats.cpu = 95
	dialer := &stubDialer{}
	svc, _ := newTestService(t, testConfig(t), stats, dialer)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{domain.CheckCPU}, report.Failed())
	assert.Len(t, report.Checks, 6)
	assert.Equal(t, 1, dialer.calls)

	mem, ok := report.Lookup(domain.CheckMemory)
	require.True(t, ok)
	assert.True(t, mem.Healthy)
	assert.Equal(t, 20.0, mem.Value)
}

func TestServiceRunCollectsEveryFailure(t *testing.T) {
	stats := healthyStats()
	stats.mem = 91
	stats.disk.Free = 1 * domain.BytesPerGB
	stats.disk.UsedPercent = 99
	dialer := &stubDialer{err: errors.New("network is unreachable")}
	svc, _ := newTestService(t, testConfig(t), stats, dialer)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Passed())
	assert.Equal(t, []string{
		domain.CheckMemory,
		domain.CheckDisk,
		domain.CheckNetwork,
		domain.CheckDiskFull,
	}, report.Failed())
}

func TestServiceRunBadDiskPathIsFatal(t *testing.T) {
	cfg := testConfig(t)
	cfg.Checks.Disk.Path = filepath.Join(t.TempDir(), "missing")
	dialer := &stubDialer{}
	svc, _ := newTestService(t, cfg, healthyStats(), dialer)

	report, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), domain.CheckDisk)

	// reboot, cpu and memory completed before the disk probe aborted
	assert.Len(t, report.Checks, 3)
	assert.Zero(t, dialer.calls)
}

func TestServiceRunIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t, testConfig(t), healthyStats(), &stubDialer{})

	first, err := svc.Run(context.Background())
	require.NoError(t, err)
	second, err := svc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, second.Checks, len(first.Checks))
	for i := range first.Checks {
		assert.Equal(t, first.Checks[i].Name, second.Checks[i].Name)
		assert.Equal(t, first.Checks[i].Healthy, second.Checks[i].Healthy)
	}
}

func TestServiceSkipsProbes(t *testing.T) {
	cfg := testConfig(t)
	cfg.AddSkip(string(domain.ProbeNetwork))
	cfg.AddSkip(string(domain.ProbeCPU))
	stats := healthyStats()
	dialer := &stubDialer{}
	svc, _ := newTestService(t, cfg, stats, dialer)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, report.Checks, 4)
	assert.Zero(t, dialer.calls)
	assert.Zero(t, stats.cpuCalls)
	_, ok := report.Lookup(domain.CheckNetwork)
	assert.False(t, ok)
}

func TestNewServiceRejectsUnknownSkip(t *testing.T) {
	cfg := testConfig(t)
	cfg.AddSkip("gpu")

	_, err := NewService(cfg, Dependencies{Stats: healthyStats(), Dialer: &stubDialer{}})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Equal(t, configvalidator.Validate(cfg).Error(), err.Error())
}

func TestNewServiceRequiresAdapters(t *testing.T) {
	_, err := NewService(testConfig(t), Dependencies{Dialer: &stubDialer{}})
	assert.Error(t, err)

	cfg := testConfig(t)
	cfg.Checks.Skip = []string{"cpu", "memory", "disk", "disk_full"}
	svc, err := NewService(cfg, Dependencies{Dialer: &stubDialer{}})
	require.NoError(t, err)
	assert.Len(t, svc.Probes, 2)
}

func TestServiceRunStopsWhenCancelled(t *testing.T) {
	svc, _ := newTestService(t, testConfig(t), healthyStats(), &stubDialer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := svc.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Checks)
}

func TestServiceRunCancelledDuringLastProbe(t *testing.T) {
	cfg := testConfig(t)
	cfg.AddSkip(string(domain.ProbeDiskFull))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc, err := NewService(cfg, Dependencies{Stats: healthyStats(), Dialer: cancellingDialer{cancel: cancel}})
	require.NoError(t, err)
	require.Equal(t, domain.CheckNetwork, svc.Probes[len(svc.Probes)-1].Name())

	report, err := svc.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, report.Checks, 4)
	_, ok := report.Lookup(domain.CheckNetwork)
	assert.False(t, ok, "a cancelled dial must not be recorded as a failed check")
}

func TestServiceRunCancelledDuringCPUSample(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stats := healthyStats()
	stats.onCPU = cancel
	stats.cpuErr = context.Canceled

	svc, _ := newTestService(t, testConfig(t), stats, &stubDialer{})
	report, err := svc.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, ok := report.Lookup(domain.CheckCPU)
	assert.False(t, ok)
}
