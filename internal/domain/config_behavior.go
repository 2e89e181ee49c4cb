package domain

// DefaultConfig returns the thresholds used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		ConfigFormatVersion: ConfigFormatVersion,
		Checks: ChecksSettings{
			Reboot: RebootSettings{MarkerPath: DefaultRebootMarker},
			CPU: CPUSettings{
				ThresholdPercent: DefaultCPUThresholdPercent,
				SampleWindow:     DefaultCPUSampleWindow,
			},
			Memory: MemorySettings{ThresholdPercent: DefaultMemoryThresholdPercent},
			Disk: DiskSettings{
				Path:        DefaultDiskPath,
				ThresholdGB: DefaultDiskThresholdGB,
				FullPercent: DefaultDiskFullPercent,
			},
			Network: NetworkSettings{
				Address: DefaultNetworkAddress,
				Timeout: DefaultNetworkTimeout,
			},
		},
	}
}

// Skips reports whether the probe is disabled in checks.skip.
func (c *Config) Skips(key ProbeKey) bool {
	for _, name := range c.Checks.Skip {
		if name == string(key) {
			return true
		}
	}
	return false
}

// AddSkip disables a probe, ignoring duplicates.
func (c *Config) AddSkip(key string) {
	for _, name := range c.Checks.Skip {
		if name == key {
			return
		}
	}
	c.Checks.Skip = append(c.Checks.Skip, key)
}
