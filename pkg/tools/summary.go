package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/riskdash/pkg/client"
	"github.com/user/riskdash/pkg/model"
	"github.com/user/riskdash/pkg/summary"
	"github.com/user/riskdash/pkg/view"
)

// RiskSummaryTool computes the dashboard metric cards for the agent.
type RiskSummaryTool struct {
	Resolver *client.Resolver
}

func (t *RiskSummaryTool) Name() string {
	return "RiskSummary"
}

func (t *RiskSummaryTool) Description() string {
	return "Returns counts of findings by risk level and sensitivity, the average confidence score, and the overall risk posture."
}

func (t *RiskSummaryTool) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *RiskSummaryTool) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if progress != nil {
		progress("Computing risk summary...")
	}

	result := t.Resolver.Resolve(ctx, view.NewFilterState())
	s := summary.Compute(result.Findings)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total findings: %d\n", s.Total))
	sb.WriteString("By risk level:\n")
	for _, level := range []model.RiskLevel{model.RiskCritical, model.RiskHigh, model.RiskMedium, model.RiskLow, model.RiskUnknown} {
		if n := s.ByRisk[level]; n > 0 {
			sb.WriteString(fmt.Sprintf("  %s: %d\n", level, n))
		}
	}
	sb.WriteString("By sensitivity:\n")
	for _, level := range []model.Sensitivity{model.SensitivityHigh, model.SensitivityMedium, model.SensitivityLow, model.SensitivityUnknown} {
		if n := s.BySensitivity[level]; n > 0 {
			sb.WriteString(fmt.Sprintf("  %s: %d\n", level, n))
		}
	}
	if s.AvgConfidence > 0 {
		sb.WriteString(fmt.Sprintf("Average confidence: %.1f%%\n", s.AvgConfidence*100))
	}
	sb.WriteString(fmt.Sprintf("Health score: %d/100 (posture: %s)\n", s.Score, s.Posture))
	return sb.String(), nil
}
