package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ConfigFilePermissions is the permission for the config file (rw-r--r--)
	ConfigFilePermissions = 0o644
)

// BytesPerGB converts byte counts to binary gigabytes.
const BytesPerGB = 1024 * 1024 * 1024

// Probe defaults
const (
	DefaultRebootMarker           = "/run/reboot-required"
	DefaultCPUThresholdPercent    = 80
	DefaultCPUSampleWindow        = time.Second
	DefaultMemoryThresholdPercent = 80
	DefaultDiskPath               = "/"
	DefaultDiskThresholdGB        = 10
	DefaultDiskFullPercent        = 95
	// DefaultNetworkAddress is a public DNS resolver that is always reachable
	// when the host has working internet access.
	DefaultNetworkAddress = "8.8.8.8:53"
	DefaultNetworkTimeout = 3 * time.Second
)

// ConfigFormatVersion is written into freshly generated config files.
const ConfigFormatVersion = "1"

// ProbeKey identifies a probe in configuration (for example in checks.skip).
type ProbeKey string

const (
	ProbeReboot   ProbeKey = "reboot"
	ProbeCPU      ProbeKey = "cpu"
	ProbeMemory   ProbeKey = "memory"
	ProbeDisk     ProbeKey = "disk"
	ProbeNetwork  ProbeKey = "network"
	ProbeDiskFull ProbeKey = "disk_full"
)

// Check display names, as printed in the summary.
const (
	CheckReboot   = "Reboot Required"
	CheckCPU      = "CPU Usage"
	CheckMemory   = "Memory Usage"
	CheckDisk     = "Disk Space"
	CheckNetwork  = "Network"
	CheckDiskFull = "Disk Full"
)

// ProbeKeys lists every probe in declaration order.
func ProbeKeys() []ProbeKey {
	return []ProbeKey{ProbeReboot, ProbeCPU, ProbeMemory, ProbeDisk, ProbeNetwork, ProbeDiskFull}
}

// IsKnownProbe reports whether key names a probe.
func IsKnownProbe(key string) bool {
	for _, k := range ProbeKeys() {
		if string(k) == key {
			return true
		}
	}
	return false
}
