package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/hostcheck/internal/domain"
)

type summaryStyles struct {
	ok   lipgloss.Style
	warn lipgloss.Style
}

// newSummaryStyles colours output only when out is a terminal.
func newSummaryStyles(out io.Writer) summaryStyles {
	r := lipgloss.NewRenderer(out)
	return summaryStyles{
		ok:   r.NewStyle().Foreground(lipgloss.Color("2")),
		warn: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (s summaryStyles) marker(check domain.CheckResult) string {
	if check.Healthy {
		return s.ok.Render("✓ " + check.Status())
	}
	return s.warn.Render("✗ " + check.Status())
}

// RenderHeader prints the banner shown before the probes start.
func RenderHeader(out io.Writer) {
	fmt.Fprintln(out, reportHeader)
	fmt.Fprintln(out)
}

// RenderSummary prints one line per check and the closing verdict, and
// returns the overall status and failed check names.
func RenderSummary(out io.Writer, report domain.HealthReport) (bool, []string) {
	styles := newSummaryStyles(out)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== Summary ===")
	for _, check := range report.Checks {
		fmt.Fprintf(out, "%s: %s\n", check.Name, styles.marker(check))
	}

	failed := report.Failed()
	fmt.Fprintln(out)
	if len(failed) > 0 {
		fmt.Fprintln(out, styles.warn.Render("⚠️  Failed Checks: "+strings.Join(failed, ", ")))
	} else {
		fmt.Fprintln(out, styles.ok.Render(MsgAllChecksPassed))
	}
	return report.Passed(), failed
}
