package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/doeshing/hostcheck/internal/domain"
)

// Validate ensures thresholds are usable before any probe runs.
func Validate(cfg domain.Config) error {
	if err := ValidateSkip(cfg.Checks.Skip); err != nil {
		return err
	}
	if err := validateReboot(cfg.Checks.Reboot); err != nil {
		return err
	}
	if err := validateCPU(cfg.Checks.CPU); err != nil {
		return err
	}
	if err := validatePercent("checks.memory.threshold_percent", cfg.Checks.Memory.ThresholdPercent); err != nil {
		return err
	}
	if err := validateDisk(cfg.Checks.Disk); err != nil {
		return err
	}
	return validateNetwork(cfg.Checks.Network)
}

// ValidateSkip rejects probe names that do not exist.
func ValidateSkip(skip []string) error {
	for _, name := range skip {
		if !domain.IsKnownProbe(name) {
			return invalid("checks.skip", name, fmt.Errorf("unknown probe (want one of %s)", knownProbes()))
		}
	}
	return nil
}

func validateReboot(reboot domain.RebootSettings) error {
	if strings.TrimSpace(reboot.MarkerPath) == "" {
		return invalid("checks.reboot.marker_path", "", errors.New("must be set"))
	}
	return nil
}

func validateCPU(cpu domain.CPUSettings) error {
	if err := validatePercent("checks.cpu.threshold_percent", cpu.ThresholdPercent); err != nil {
		return err
	}
	if cpu.SampleWindow <= 0 {
		return invalid("checks.cpu.sample_window", cpu.SampleWindow.String(), errors.New("must be > 0"))
	}
	return nil
}

func validateDisk(disk domain.DiskSettings) error {
	if strings.TrimSpace(disk.Path) == "" {
		return invalid("checks.disk.path", "", errors.New("must be set"))
	}
	if disk.ThresholdGB < 0 {
		return invalid("checks.disk.threshold_gb", fmt.Sprint(disk.ThresholdGB), errors.New("must be >= 0"))
	}
	return validatePercent("checks.disk.full_percent", disk.FullPercent)
}

func validateNetwork(network domain.NetworkSettings) error {
	if _, _, err := net.SplitHostPort(network.Address); err != nil {
		return invalid("checks.network.address", network.Address, err)
	}
	if network.Timeout <= 0 {
		return invalid("checks.network.timeout", network.Timeout.String(), errors.New("must be > 0"))
	}
	return nil
}

func validatePercent(field string, value float64) error {
	if value <= 0 || value > 100 {
		return invalid(field, fmt.Sprint(value), errors.New("must be in (0, 100]"))
	}
	return nil
}

func knownProbes() string {
	keys := domain.ProbeKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func invalid(field, value string, err error) error {
	return &domain.ConfigError{Field: field, Value: value, Err: err}
}
