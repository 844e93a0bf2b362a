// Package render draws findings tables and summary cards for the terminal.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/user/riskdash/pkg/format"
	"github.com/user/riskdash/pkg/model"
)

var badgeColors = map[string]*color.Color{
	format.BadgeLow:      color.New(color.FgGreen),
	format.BadgeMedium:   color.New(color.FgYellow),
	format.BadgeHigh:     color.New(color.FgRed),
	format.BadgeCritical: color.New(color.FgRed, color.Bold),
	format.BadgeUnknown:  color.New(color.Faint),
}

// Badge renders a risk or sensitivity level with its badge color.
func Badge(level string) string {
	c := badgeColors[format.RiskBadgeClass(level)]
	if level == "" {
		return c.Sprint("Unknown")
	}
	return c.Sprint(level)
}

// Table writes findings tables.
type Table struct {
	Log *zap.Logger
}

// Findings writes the display window as an aligned table. total is the
// post-filter count before windowing so the footer can say how many rows were
// held back.
func (t *Table) Findings(w io.Writer, findings []model.Finding, total int) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No findings to display.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSDE CATEGORY\tRISK\tSENSITIVITY\tCONFIDENCE\tSCANNED")
	for i, f := range findings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.DisplayID(i),
			valueOrDash(f.FindingType),
			valueOrDash(f.SDECategory),
			Badge(f.RiskLevel),
			Badge(f.Sensitivity),
			format.Confidence(f.ConfidenceScore),
			format.Timestamp(f.ScanTimestamp, t.Log),
		)
	}
	tw.Flush()

	if total > len(findings) {
		fmt.Fprintf(w, "\nShowing %d of %d findings. Use --all to show every row.\n", len(findings), total)
	}
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
