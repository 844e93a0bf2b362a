package model

import "testing"

func TestDisplayID(t *testing.T) {
	f := Finding{FindingID: "f-abc"}
	if got := f.DisplayID(4); got != "f-abc" {
		t.Errorf("DisplayID = %q, want f-abc", got)
	}

	empty := Finding{}
	if got := empty.DisplayID(4); got != "finding-5" {
		t.Errorf("positional DisplayID = %q, want finding-5", got)
	}
}

func TestNormalizeRiskLevel(t *testing.T) {
	tests := []struct {
		in   string
		want RiskLevel
	}{
		{"low", RiskLow},
		{"MEDIUM", RiskMedium},
		{" High ", RiskHigh},
		{"critical", RiskCritical},
		{"nonsense", RiskUnknown},
		{"", RiskUnknown},
	}
	for _, tt := range tests {
		if got := NormalizeRiskLevel(tt.in); got != tt.want {
			t.Errorf("NormalizeRiskLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSensitivity(t *testing.T) {
	if got := NormalizeSensitivity("HIGH"); got != SensitivityHigh {
		t.Errorf("got %v, want %v", got, SensitivityHigh)
	}
	if got := NormalizeSensitivity("critical"); got != SensitivityUnknown {
		t.Errorf("sensitivity has no critical level, got %v", got)
	}
}
