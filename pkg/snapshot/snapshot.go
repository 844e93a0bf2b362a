// Package snapshot persists findings lists and diffs them against baselines.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/user/riskdash/pkg/model"
)

// DefaultPath is where snapshots land unless the caller names a file.
const DefaultPath = ".riskdash-snapshot.json"

// Diff buckets the current findings against a baseline.
type Diff struct {
	New       []model.Finding
	Fixed     []model.Finding
	Unchanged []model.Finding
}

// Save writes the findings list to path as indented JSON.
func Save(path string, findings []model.Finding) error {
	data, err := json.MarshalIndent(findings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Load reads a findings snapshot from path.
func Load(path string) ([]model.Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var findings []model.Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return findings, nil
}

// Compare buckets current findings into New, Fixed, and Unchanged relative to
// the baseline.
func Compare(current, baseline []model.Finding) Diff {
	baseKeys := make(map[string]bool, len(baseline))
	for _, f := range baseline {
		baseKeys[identity(f)] = true
	}
	currKeys := make(map[string]bool, len(current))
	for _, f := range current {
		currKeys[identity(f)] = true
	}

	var d Diff
	for _, f := range current {
		if baseKeys[identity(f)] {
			d.Unchanged = append(d.Unchanged, f)
		} else {
			d.New = append(d.New, f)
		}
	}
	for _, f := range baseline {
		if !currKeys[identity(f)] {
			d.Fixed = append(d.Fixed, f)
		}
	}
	return d
}

// identity keys a finding for diffing. The backend's finding id wins; records
// without one fall back to a content key, never a positional one.
func identity(f model.Finding) string {
	if f.FindingID != "" {
		return "id:" + f.FindingID
	}
	return strings.Join([]string{"content", f.FindingType, f.SDECategory, f.DataValue}, "|")
}

// Render returns a text report of the diff in the order New, Fixed, Unchanged.
func (d Diff) Render(baselineName string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Snapshot Comparison (vs %s):\n", baselineName))
	sb.WriteString("--------------------------------------------------\n")

	sb.WriteString(fmt.Sprintf("NEW FINDINGS: %d\n", len(d.New)))
	for _, f := range d.New {
		sb.WriteString(fmt.Sprintf("  [+] [%s] %s (%s)\n", f.RiskLevel, f.FindingType, f.SDECategory))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("RESOLVED FINDINGS: %d\n", len(d.Fixed)))
	for _, f := range d.Fixed {
		sb.WriteString(fmt.Sprintf("  [-] [%s] %s (%s)\n", f.RiskLevel, f.FindingType, f.SDECategory))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("UNCHANGED FINDINGS: %d\n", len(d.Unchanged)))
	for i, f := range d.Unchanged {
		if i >= 10 {
			sb.WriteString(fmt.Sprintf("  ... and %d more.\n", len(d.Unchanged)-10))
			break
		}
		sb.WriteString(fmt.Sprintf("  [=] [%s] %s (%s)\n", f.RiskLevel, f.FindingType, f.SDECategory))
	}
	return sb.String()
}
