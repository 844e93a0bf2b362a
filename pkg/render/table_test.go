package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/user/riskdash/pkg/model"
)

func TestFindingsTable(t *testing.T) {
	color.NoColor = true

	findings := []model.Finding{
		{FindingID: "f-1", FindingType: "ssn", SDECategory: "PII", RiskLevel: "High", Sensitivity: "High", ConfidenceScore: 0.873, ScanTimestamp: "2024-03-01T12:30:00Z"},
		{FindingType: "email", RiskLevel: "bogus"},
	}

	var buf bytes.Buffer
	table := &Table{Log: zap.NewNop()}
	table.Findings(&buf, findings, 15)
	out := buf.String()

	if !strings.Contains(out, "RISK") || !strings.Contains(out, "SENSITIVITY") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "87.3%") {
		t.Errorf("confidence not formatted:\n%s", out)
	}
	if !strings.Contains(out, "finding-2") {
		t.Errorf("positional id missing for id-less finding:\n%s", out)
	}
	if !strings.Contains(out, "N/A") {
		t.Errorf("absent values should render N/A:\n%s", out)
	}
	if !strings.Contains(out, "Showing 2 of 15 findings") {
		t.Errorf("window footer missing:\n%s", out)
	}
}

func TestFindingsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	(&Table{Log: zap.NewNop()}).Findings(&buf, nil, 0)
	if !strings.Contains(buf.String(), "No findings") {
		t.Errorf("empty state missing:\n%s", buf.String())
	}
}

func TestBadgeUnknownDefault(t *testing.T) {
	color.NoColor = true
	if got := Badge(""); got != "Unknown" {
		t.Errorf("Badge(\"\") = %q, want Unknown", got)
	}
	if got := Badge("High"); got != "High" {
		t.Errorf("Badge(High) = %q", got)
	}
}
