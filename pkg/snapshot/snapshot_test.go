package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/user/riskdash/pkg/model"
)

func TestSaveLoadCompare(t *testing.T) {
	// 1. Baseline findings
	baseline := []model.Finding{
		{FindingID: "f-1", FindingType: "ssn", RiskLevel: "High"},  // will be UNCHANGED
		{FindingID: "f-2", FindingType: "email", RiskLevel: "Low"}, // will be FIXED
	}

	path := filepath.Join(t.TempDir(), "baseline.json")
	if err := Save(path, baseline); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}
	if len(loaded) != 2 {
		t.Errorf("Expected 2 findings in loaded baseline, got %d", len(loaded))
	}

	// 2. Current findings
	current := []model.Finding{
		{FindingID: "f-1", FindingType: "ssn", RiskLevel: "High"},         // UNCHANGED
		{FindingID: "f-3", FindingType: "credit_card", RiskLevel: "High"}, // NEW
	}

	diff := Compare(current, loaded)

	if len(diff.Unchanged) != 1 || diff.Unchanged[0].FindingID != "f-1" {
		t.Errorf("Unchanged = %+v, want only f-1", diff.Unchanged)
	}
	if len(diff.New) != 1 || diff.New[0].FindingID != "f-3" {
		t.Errorf("New = %+v, want only f-3", diff.New)
	}
	if len(diff.Fixed) != 1 || diff.Fixed[0].FindingID != "f-2" {
		t.Errorf("Fixed = %+v, want only f-2", diff.Fixed)
	}
}

func TestCompareContentKeyWhenIDAbsent(t *testing.T) {
	baseline := []model.Finding{
		{FindingType: "ssn", SDECategory: "PII", DataValue: "xxx-xx-1234"},
	}
	current := []model.Finding{
		{FindingType: "ssn", SDECategory: "PII", DataValue: "xxx-xx-1234"},
	}

	diff := Compare(current, baseline)
	if len(diff.Unchanged) != 1 || len(diff.New) != 0 {
		t.Errorf("identical id-less findings should match by content: %+v", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing snapshot")
	}
}
