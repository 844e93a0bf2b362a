// Package summary computes the dashboard metric cards from a findings list.
package summary

import (
	"github.com/user/riskdash/pkg/model"
)

// Posture is the coarse risk posture shown on the dashboard card.
type Posture string

const (
	PostureLow      Posture = "LOW"
	PostureModerate Posture = "MODERATE"
	PostureHigh     Posture = "HIGH"
	PostureCritical Posture = "CRITICAL"
)

// Summary aggregates one findings list into the metric-card values.
type Summary struct {
	Total         int                       `json:"total"`
	ByRisk        map[model.RiskLevel]int   `json:"by_risk"`
	BySensitivity map[model.Sensitivity]int `json:"by_sensitivity"`
	AvgConfidence float64                   `json:"avg_confidence"`
	Score         int                       `json:"score"`
	Posture       Posture                   `json:"posture"`
}

// Deductions per finding when computing the health score.
var riskWeights = map[model.RiskLevel]int{
	model.RiskCritical: 15,
	model.RiskHigh:     8,
	model.RiskMedium:   3,
	model.RiskLow:      1,
	model.RiskUnknown:  2,
}

// Compute builds the summary. The health score starts at 100 and loses a
// weight per finding, floored at zero; the posture follows the score.
func Compute(findings []model.Finding) Summary {
	s := Summary{
		Total:         len(findings),
		ByRisk:        make(map[model.RiskLevel]int),
		BySensitivity: make(map[model.Sensitivity]int),
	}

	score := 100
	confSum := 0.0
	confCount := 0
	for _, f := range findings {
		risk := model.NormalizeRiskLevel(f.RiskLevel)
		s.ByRisk[risk]++
		s.BySensitivity[model.NormalizeSensitivity(f.Sensitivity)]++
		score -= riskWeights[risk]
		if f.ConfidenceScore > 0 {
			confSum += f.ConfidenceScore
			confCount++
		}
	}
	if score < 0 {
		score = 0
	}
	if confCount > 0 {
		s.AvgConfidence = confSum / float64(confCount)
	}

	s.Score = score
	s.Posture = postureFromScore(score)
	return s
}

func postureFromScore(score int) Posture {
	switch {
	case score >= 90:
		return PostureLow
	case score >= 70:
		return PostureModerate
	case score >= 50:
		return PostureHigh
	default:
		return PostureCritical
	}
}
