package config

import (
	"errors"
	"testing"

	"github.com/doeshing/hostcheck/internal/domain"
)

func TestValidateDefaultConfig(t *testing.T) {
	if err := Validate(domain.DefaultConfig()); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Config)
		field  string
	}{
		{"cpu threshold zero", func(c *domain.Config) { c.Checks.CPU.ThresholdPercent = 0 }, "checks.cpu.threshold_percent"},
		{"cpu threshold above 100", func(c *domain.Config) { c.Checks.CPU.ThresholdPercent = 101 }, "checks.cpu.threshold_percent"},
		{"negative sample window", func(c *domain.Config) { c.Checks.CPU.SampleWindow = -1 }, "checks.cpu.sample_window"},
		{"memory threshold negative", func(c *domain.Config) { c.Checks.Memory.ThresholdPercent = -5 }, "checks.memory.threshold_percent"},
		{"negative disk threshold", func(c *domain.Config) { c.Checks.Disk.ThresholdGB = -1 }, "checks.disk.threshold_gb"},
		{"empty disk path", func(c *domain.Config) { c.Checks.Disk.Path = " " }, "checks.disk.path"},
		{"disk full percent", func(c *domain.Config) { c.Checks.Disk.FullPercent = 150 }, "checks.disk.full_percent"},
		{"address without port", func(c *domain.Config) { c.Checks.Network.Address = "8.8.8.8" }, "checks.network.address"},
		{"zero timeout", func(c *domain.Config) { c.Checks.Network.Timeout = 0 }, "checks.network.timeout"},
		{"empty marker", func(c *domain.Config) { c.Checks.Reboot.MarkerPath = "" }, "checks.reboot.marker_path"},
		{"unknown skip", func(c *domain.Config) { c.Checks.Skip = []string{"gpu"} }, "checks.skip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var cfgErr *domain.ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tt.field {
				t.Errorf("got field %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestValidateAllowsZeroDiskThreshold(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Checks.Disk.ThresholdGB = 0
	cfg.Checks.Skip = []string{"network", "disk_full"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
