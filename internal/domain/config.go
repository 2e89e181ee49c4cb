package domain

import "time"

// Config mirrors ~/.hostcheck/config.yaml.
type Config struct {
	ConfigFormatVersion string         `yaml:"config_format_version"`
	Checks              ChecksSettings `yaml:"checks"`
}

// ChecksSettings groups per-probe thresholds.
type ChecksSettings struct {
	Skip    []string        `yaml:"skip,omitempty"`
	Reboot  RebootSettings  `yaml:"reboot"`
	CPU     CPUSettings     `yaml:"cpu"`
	Memory  MemorySettings  `yaml:"memory"`
	Disk    DiskSettings    `yaml:"disk"`
	Network NetworkSettings `yaml:"network"`
}

// RebootSettings locates the OS pending-restart marker.
type RebootSettings struct {
	MarkerPath string `yaml:"marker_path"`
}

// CPUSettings configures the CPU load probe.
type CPUSettings struct {
	ThresholdPercent float64       `yaml:"threshold_percent"`
	SampleWindow     time.Duration `yaml:"sample_window"`
}

// MemorySettings configures the memory usage probe.
type MemorySettings struct {
	ThresholdPercent float64 `yaml:"threshold_percent"`
}

// DiskSettings configures both disk probes.
type DiskSettings struct {
	Path        string  `yaml:"path"`
	ThresholdGB float64 `yaml:"threshold_gb"`
	FullPercent float64 `yaml:"full_percent"`
}

// NetworkSettings points the connectivity probe at a sentinel host.
type NetworkSettings struct {
	Address string        `yaml:"address"`
	Timeout time.Duration `yaml:"timeout"`
}
