package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/hostcheck/internal/domain"
	"github.com/doeshing/hostcheck/internal/pkg/filesystem"
	"github.com/doeshing/hostcheck/internal/ports"
)

// Environment variables read by the loader.
const (
	EnvConfigPath      = "HOSTCHECK_CONFIG"
	EnvCPUThreshold    = "HOSTCHECK_CPU_THRESHOLD"
	EnvMemoryThreshold = "HOSTCHECK_MEMORY_THRESHOLD"
	EnvDiskThresholdGB = "HOSTCHECK_DISK_THRESHOLD_GB"
	EnvDiskPath        = "HOSTCHECK_DISK_PATH"
	EnvNetworkAddress  = "HOSTCHECK_NETWORK_ADDRESS"
)

// FileLoader loads YAML configuration from ~/.hostcheck/config.yaml (overridable via HOSTCHECK_CONFIG).
// A missing file is not an error: the defaults apply.
type FileLoader struct {
	overridePath string
	getenv       func(string) string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path, getenv: os.Getenv}
}

// Load implements ports.ConfigProvider. The file is decoded over the
// defaults, so omitted keys keep their default and explicit values, zero
// included, are left for validation.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return domain.Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := l.applyEnv(&cfg); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Path returns the config file location the loader reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := l.getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".hostcheck", "config.yaml")
}

// WriteDefault writes the default configuration. An existing file is kept
// unless force is set.
func (l *FileLoader) WriteDefault(force bool) (string, error) {
	path := l.Path()
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return path, err
	}
	raw, err := Marshal(domain.DefaultConfig())
	if err != nil {
		return path, err
	}
	return path, os.WriteFile(path, raw, domain.ConfigFilePermissions)
}

// Marshal renders cfg as YAML.
func Marshal(cfg domain.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (l *FileLoader) applyEnv(cfg *domain.Config) error {
	floats := []struct {
		name   string
		target *float64
	}{
		{EnvCPUThreshold, &cfg.Checks.CPU.ThresholdPercent},
		{EnvMemoryThreshold, &cfg.Checks.Memory.ThresholdPercent},
		{EnvDiskThresholdGB, &cfg.Checks.Disk.ThresholdGB},
	}
	for _, f := range floats {
		raw := l.getenv(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &domain.ConfigError{Field: f.name, Value: raw, Err: err}
		}
		*f.target = v
	}

	if path := l.getenv(EnvDiskPath); path != "" {
		cfg.Checks.Disk.Path = filesystem.ExpandPath(path)
	}
	if addr := l.getenv(EnvNetworkAddress); addr != "" {
		cfg.Checks.Network.Address = addr
	}
	return nil
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
