package view

import (
	"testing"

	"github.com/user/riskdash/pkg/model"
)

func numericFindings() []model.Finding {
	return []model.Finding{
		{FindingID: "f-1", ConfidenceScore: 0.42},
		{FindingID: "f-2", ConfidenceScore: 0.91},
		{FindingID: "f-3", ConfidenceScore: 0.10},
		{FindingID: "f-4", ConfidenceScore: 0.77},
	}
}

func TestSortNumericAscDescMirrored(t *testing.T) {
	findings := numericFindings()

	asc := SortState{Key: "confidence_score", Direction: Asc}.Apply(findings)
	desc := SortState{Key: "confidence_score", Direction: Desc}.Apply(findings)

	if len(asc) != len(desc) {
		t.Fatalf("length mismatch: asc=%d desc=%d", len(asc), len(desc))
	}
	for i := range asc {
		mirror := desc[len(desc)-1-i]
		if asc[i].FindingID != mirror.FindingID {
			t.Errorf("position %d: asc has %s, mirrored desc has %s", i, asc[i].FindingID, mirror.FindingID)
		}
	}

	for i := 1; i < len(asc); i++ {
		if asc[i-1].ConfidenceScore > asc[i].ConfidenceScore {
			t.Errorf("asc order violated at %d: %v > %v", i, asc[i-1].ConfidenceScore, asc[i].ConfidenceScore)
		}
	}
}

func TestSortStringCaseInsensitive(t *testing.T) {
	findings := []model.Finding{
		{FindingID: "f-1", FindingType: "ssn"},
		{FindingID: "f-2", FindingType: "Credit Card"},
		{FindingID: "f-3", FindingType: "email"},
	}

	sorted := SortState{Key: "finding_type", Direction: Asc}.Apply(findings)
	want := []string{"Credit Card", "email", "ssn"}
	for i, w := range want {
		if sorted[i].FindingType != w {
			t.Errorf("position %d: got %q, want %q", i, sorted[i].FindingType, w)
		}
	}
}

func TestSortMissingValueSortsAsEmpty(t *testing.T) {
	findings := []model.Finding{
		{FindingID: "f-1", FindingType: "ssn"},
		{FindingID: "f-2"},
	}
	sorted := SortState{Key: "finding_type", Direction: Asc}.Apply(findings)
	if sorted[0].FindingID != "f-2" {
		t.Errorf("expected the finding with no type to sort first, got %s", sorted[0].FindingID)
	}
}

func TestSelectTogglesDirectionOnSameKey(t *testing.T) {
	var s SortState

	s.Select("risk_level")
	if s.Key != "risk_level" || s.Direction != Asc {
		t.Fatalf("first select: got %+v, want risk_level/asc", s)
	}

	s.Select("risk_level")
	if s.Key != "risk_level" || s.Direction != Desc {
		t.Errorf("second select: got %+v, want risk_level/desc", s)
	}

	s.Select("risk_level")
	if s.Direction != Asc {
		t.Errorf("third select: got %v, want asc again", s.Direction)
	}
}

func TestSelectNewKeyResetsToAsc(t *testing.T) {
	var s SortState
	s.Select("risk_level")
	s.Select("risk_level") // now desc
	s.Select("confidence_score")
	if s.Key != "confidence_score" || s.Direction != Asc {
		t.Errorf("got %+v, want confidence_score/asc", s)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	findings := numericFindings()
	_ = SortState{Key: "confidence_score", Direction: Desc}.Apply(findings)
	if findings[0].FindingID != "f-1" {
		t.Errorf("input slice was mutated: first element is now %s", findings[0].FindingID)
	}
}
