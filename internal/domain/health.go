package domain

import "time"

// Reading is what a single probe observed, before it is folded into a report.
// Cause holds a measurement error the probe chose to absorb.
type Reading struct {
	Healthy bool
	Value   float64
	Detail  string
	Cause   error
}

// CheckResult captures a single diagnostic result.
type CheckResult struct {
	Name     string
	Healthy  bool
	Value    float64
	Detail   string
	Duration time.Duration
}

// Status returns the label printed next to the check in the summary.
func (c CheckResult) Status() string {
	if c.Healthy {
		return "OK"
	}
	return "WARNING"
}

// HealthReport aggregates checks in declaration order.
type HealthReport struct {
	Checks    []CheckResult
	StartedAt time.Time
	Duration  time.Duration
}

// Passed reports whether every check in the report is healthy.
func (r HealthReport) Passed() bool {
	for _, check := range r.Checks {
		if !check.Healthy {
			return false
		}
	}
	return true
}

// Failed returns the names of unhealthy checks in report order.
func (r HealthReport) Failed() []string {
	var failed []string
	for _, check := range r.Checks {
		if !check.Healthy {
			failed = append(failed, check.Name)
		}
	}
	return failed
}

// Lookup finds a check by its display name.
func (r HealthReport) Lookup(name string) (CheckResult, bool) {
	for _, check := range r.Checks {
		if check.Name == name {
			return check, true
		}
	}
	return CheckResult{}, false
}

// DiskUsage is a filesystem usage snapshot for one path.
type DiskUsage struct {
	Path        string
	Total       uint64
	Free        uint64
	Used        uint64
	UsedPercent float64
}

// FreeGB returns free space in binary gigabytes.
func (d DiskUsage) FreeGB() float64 {
	return float64(d.Free) / BytesPerGB
}
