// Package format holds the display formatters for findings table cells. All
// formatters are total: bad input degrades to "N/A" or an unknown class, never
// a panic.
package format

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// NotAvailable is rendered for any absent or unparseable cell value.
const NotAvailable = "N/A"

// Badge classes for the risk level column.
const (
	BadgeLow      = "risk-low"
	BadgeMedium   = "risk-medium"
	BadgeHigh     = "risk-high"
	BadgeCritical = "risk-critical"
	BadgeUnknown  = "risk-unknown"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Confidence renders a [0,1] confidence score as a percentage with one
// decimal place. A zero score means the backend omitted the value.
func Confidence(score float64) string {
	if score <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", score*100)
}

// Timestamp renders a scan timestamp as a local date+time string. Empty or
// unparseable input is logged as a warning and rendered as N/A.
func Timestamp(ts string, log *zap.Logger) string {
	if ts == "" {
		return NotAvailable
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Local().Format("Jan 2, 2006 15:04:05")
		}
	}
	if log != nil {
		log.Warn("unparseable scan timestamp", zap.String("value", ts))
	}
	return NotAvailable
}

// RiskBadgeClass maps a risk level onto one of five fixed badge classes,
// case-insensitively, defaulting to the unknown class.
func RiskBadgeClass(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return BadgeLow
	case "medium":
		return BadgeMedium
	case "high":
		return BadgeHigh
	case "critical":
		return BadgeCritical
	default:
		return BadgeUnknown
	}
}
