package checkup

import (
	"context"
	"net"
	"time"

	"github.com/doeshing/hostcheck/internal/domain"
)

type stubStats struct {
	cpu     float64
	mem     float64
	disk    domain.DiskUsage
	cpuErr  error
	memErr  error
	diskErr error

	cpuCalls   int
	lastWindow time.Duration
	onCPU      func()
}

func (s *stubStats) CPUPercent(_ context.Context, window time.Duration) (float64, error) {
	s.cpuCalls++
	s.lastWindow = window
	if s.onCPU != nil {
		s.onCPU()
	}
	return s.cpu, s.cpuErr
}

func (s *stubStats) MemoryPercent(context.Context) (float64, error) {
	return s.mem, s.memErr
}

func (s *stubStats) DiskUsage(_ context.Context, path string) (domain.DiskUsage, error) {
	usage := s.disk
	usage.Path = path
	return usage, s.diskErr
}

// healthyStats matches a quiet laptop: 10% CPU, 20% memory, 50GB free.
func healthyStats() *stubStats {
	return &stubStats{
		cpu: 10,
		mem: 20,
		disk: domain.DiskUsage{
			Total:       200 * domain.BytesPerGB,
			Free:        50 * domain.BytesPerGB,
			Used:        150 * domain.BytesPerGB,
			UsedPercent: 75,
		},
	}
}

type stubDialer struct {
	err   error
	calls int
}

func (d *stubDialer) DialContext(context.Context, string, string) (net.Conn, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	client, server := net.Pipe()
	_ = server.Close()
	return client, nil
}

// hangingDialer never connects; it only returns once the context expires.
type hangingDialer struct{}

func (hangingDialer) DialContext(ctx context.Context, _, _ string) (net.Conn, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// cancellingDialer cancels the run while the dial is in flight, like Ctrl-C would.
type cancellingDialer struct {
	cancel context.CancelFunc
}

func (d cancellingDialer) DialContext(ctx context.Context, _, _ string) (net.Conn, error) {
	d.cancel()
	<-ctx.Done()
	return nil, ctx.Err()
}
