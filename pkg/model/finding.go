package model

import (
	"fmt"
	"strings"
)

// RiskLevel is the ordinal exposure severity assigned by the scanning backend.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
	RiskUnknown  RiskLevel = "Unknown"
)

// Sensitivity classifies how exposed the detected data value is.
type Sensitivity string

const (
	SensitivityLow     Sensitivity = "Low"
	SensitivityMedium  Sensitivity = "Medium"
	SensitivityHigh    Sensitivity = "High"
	SensitivityUnknown Sensitivity = "Unknown"
)

// Finding represents one detected sensitive-data occurrence reported by the backend.
type Finding struct {
	FindingID       string  `json:"finding_id"`
	DataValue       string  `json:"data_value"`
	Sensitivity     string  `json:"sensitivity"`
	FindingType     string  `json:"finding_type"`
	SDECategory     string  `json:"sde_category"`
	RiskLevel       string  `json:"risk_level"`
	ConfidenceScore float64 `json:"confidence_score"`
	ScanTimestamp   string  `json:"scan_timestamp"`
}

// DisplayID returns the finding id, or a positional placeholder when the backend
// omitted one. The placeholder is for display only and must never be used as an
// identity key.
func (f Finding) DisplayID(position int) string {
	if f.FindingID != "" {
		return f.FindingID
	}
	return fmt.Sprintf("finding-%d", position+1)
}

// NormalizeRiskLevel maps an arbitrary backend string onto the known risk levels.
func NormalizeRiskLevel(s string) RiskLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	case "critical":
		return RiskCritical
	default:
		return RiskUnknown
	}
}

// NormalizeSensitivity maps an arbitrary backend string onto the known levels.
func NormalizeSensitivity(s string) Sensitivity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SensitivityLow
	case "medium":
		return SensitivityMedium
	case "high":
		return SensitivityHigh
	default:
		return SensitivityUnknown
	}
}
