package view

import (
	"testing"

	"github.com/user/riskdash/pkg/model"
)

func sampleFindings() []model.Finding {
	return []model.Finding{
		{FindingID: "f-1", RiskLevel: "High", Sensitivity: "High"},
		{FindingID: "f-2", RiskLevel: "high", Sensitivity: "Low"},
		{FindingID: "f-3", RiskLevel: "Medium", Sensitivity: "Medium"},
		{FindingID: "f-4", RiskLevel: "Low", Sensitivity: "High"},
		{FindingID: "f-5"}, // absent fields
	}
}

func TestFilterDefaultMatchesEverything(t *testing.T) {
	filter := NewFilterState()
	if filter.Active() {
		t.Fatal("default filter should not be active")
	}
	got := filter.Apply(sampleFindings())
	if len(got) != 5 {
		t.Errorf("expected all 5 findings, got %d", len(got))
	}
}

func TestFilterPredicate(t *testing.T) {
	tests := []struct {
		name    string
		filter  FilterState
		wantIDs []string
	}{
		{
			name:    "risk only, case-insensitive",
			filter:  FilterState{RiskLevel: "HIGH", Sensitivity: "all"},
			wantIDs: []string{"f-1", "f-2"},
		},
		{
			name:    "sensitivity only",
			filter:  FilterState{RiskLevel: "all", Sensitivity: "high"},
			wantIDs: []string{"f-1", "f-4"},
		},
		{
			name:    "both filters AND together",
			filter:  FilterState{RiskLevel: "high", Sensitivity: "low"},
			wantIDs: []string{"f-2"},
		},
		{
			name:    "no match yields empty",
			filter:  FilterState{RiskLevel: "low", Sensitivity: "low"},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sampleFindings())
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d findings, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].FindingID != want {
					t.Errorf("position %d: got %s, want %s", i, got[i].FindingID, want)
				}
			}
			// Every returned element must satisfy the predicate.
			for _, f := range got {
				if !tt.filter.Match(f) {
					t.Errorf("returned finding %s does not satisfy the filter", f.FindingID)
				}
			}
		})
	}
}

func TestFilterAbsentFieldsNeverMatch(t *testing.T) {
	filter := FilterState{RiskLevel: "high", Sensitivity: "all"}
	if filter.Match(model.Finding{FindingID: "f-5"}) {
		t.Error("finding with absent risk level matched a restricting filter")
	}
}

func TestFilterReset(t *testing.T) {
	filter := FilterState{RiskLevel: "high", Sensitivity: "medium"}
	filter.Reset()
	if filter.Active() {
		t.Errorf("filter still active after reset: %+v", filter)
	}
}
