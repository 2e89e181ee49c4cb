package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/doeshing/hostcheck/internal/app"
	configvalidator "github.com/doeshing/hostcheck/internal/application/config"
	"github.com/doeshing/hostcheck/internal/domain"
)

// checkOptions holds threshold overrides; only flags the user set are applied.
type checkOptions struct {
	cpuThreshold    float64
	cpuWindow       time.Duration
	memoryThreshold float64
	diskThreshold   float64
	diskFullPercent float64
	diskPath        string
	rebootMarker    string
	networkAddress  string
	networkTimeout  time.Duration
	skip            []string
	textfile        string
}

func (o *checkOptions) bind(fs *pflag.FlagSet) {
	def := domain.DefaultConfig().Checks
	fs.Float64Var(&o.cpuThreshold, "cpu-threshold", def.CPU.ThresholdPercent, "Fail when CPU usage reaches this percent")
	fs.DurationVar(&o.cpuWindow, "cpu-window", def.CPU.SampleWindow, "CPU sampling window")
	fs.Float64Var(&o.memoryThreshold, "memory-threshold", def.Memory.ThresholdPercent, "Fail when memory usage reaches this percent")
	fs.Float64Var(&o.diskThreshold, "disk-threshold", def.Disk.ThresholdGB, "Fail when free disk space is at or below this many GB")
	fs.Float64Var(&o.diskFullPercent, "disk-full-percent", def.Disk.FullPercent, "Fail when disk usage reaches this percent")
	fs.StringVar(&o.diskPath, "disk-path", def.Disk.Path, "Path whose filesystem is checked for free space")
	fs.StringVar(&o.rebootMarker, "reboot-marker", def.Reboot.MarkerPath, "File whose presence means a reboot is pending")
	fs.StringVar(&o.networkAddress, "network-address", def.Network.Address, "host:port used to test internet reachability")
	fs.DurationVar(&o.networkTimeout, "network-timeout", def.Network.Timeout, "Connection timeout for the network check")
	fs.StringSliceVar(&o.skip, "skip", nil, "Probes to skip (reboot, cpu, memory, disk, network, disk_full)")
	fs.StringVar(&o.textfile, "textfile", "", "Also write results as Prometheus textfile metrics to this path")
}

func (o *checkOptions) apply(fs *pflag.FlagSet, cfg *domain.Config) {
	if fs.Changed("cpu-threshold") {
		cfg.Checks.CPU.ThresholdPercent = o.cpuThreshold
	}
	if fs.Changed("cpu-window") {
		cfg.Checks.CPU.SampleWindow = o.cpuWindow
	}
	if fs.Changed("memory-threshold") {
		cfg.Checks.Memory.ThresholdPercent = o.memoryThreshold
	}
	if fs.Changed("disk-threshold") {
		cfg.Checks.Disk.ThresholdGB = o.diskThreshold
	}
	if fs.Changed("disk-full-percent") {
		cfg.Checks.Disk.FullPercent = o.diskFullPercent
	}
	if fs.Changed("disk-path") {
		cfg.Checks.Disk.Path = o.diskPath
	}
	if fs.Changed("reboot-marker") {
		cfg.Checks.Reboot.MarkerPath = o.rebootMarker
	}
	if fs.Changed("network-address") {
		cfg.Checks.Network.Address = o.networkAddress
	}
	if fs.Changed("network-timeout") {
		cfg.Checks.Network.Timeout = o.networkTimeout
	}
	for _, name := range o.skip {
		cfg.AddSkip(name)
	}
}

// NewCheckCommand creates the check command
func NewCheckCommand(container *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run all host health checks",
		Args:  cobra.NoArgs,
	}
	AttachCheck(cmd, container)
	return cmd
}

// AttachCheck binds the check flags to cmd and makes it run the checks.
// The root command uses it so a bare invocation runs the checks.
func AttachCheck(cmd *cobra.Command, container *app.Container) {
	opts := &checkOptions{}
	opts.bind(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runHealthCheck(cmd, container, opts)
	}
}

// runHealthCheck runs every probe, prints the report and maps failures to ErrChecksFailed
func runHealthCheck(cmd *cobra.Command, container *app.Container, opts *checkOptions) error {
	if container == nil || container.ConfigProvider == nil {
		return errors.New(ErrContainerUnavailable)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts.apply(cmd.Flags(), &cfg)
	if err := configvalidator.Validate(cfg); err != nil {
		return err
	}

	svc, err := container.CheckupService(cfg, out)
	if err != nil {
		return err
	}

	RenderHeader(out)
	report, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("health check aborted: %w", err)
	}

	passed, _ := RenderSummary(out, report)

	if opts.textfile != "" {
		if err := container.ReportExporter(opts.textfile).Export(report); err != nil {
			return fmt.Errorf("write textfile %s: %w", opts.textfile, err)
		}
	}

	if !passed {
		return ErrChecksFailed
	}
	return nil
}
