// Package tools implements the dashboard actions exposed to the chat agent.
package tools

import (
	"bytes"
	"context"
	"strings"

	"github.com/user/riskdash/pkg/client"
	"github.com/user/riskdash/pkg/render"
	"github.com/user/riskdash/pkg/view"
)

// ShowFindingsTool resolves and renders the findings table for the agent.
type ShowFindingsTool struct {
	Resolver *client.Resolver
	Table    *render.Table
}

func (t *ShowFindingsTool) Name() string {
	return "ShowFindings"
}

func (t *ShowFindingsTool) Description() string {
	return "Lists the current sensitive-data findings, optionally filtered by risk level (low, medium, high) and sensitivity (low, medium, high)."
}

func (t *ShowFindingsTool) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"risk_level": map[string]interface{}{
				"type":        "string",
				"description": "Filter by risk level: low, medium, or high. Omit for all.",
			},
			"sensitivity": map[string]interface{}{
				"type":        "string",
				"description": "Filter by sensitivity: low, medium, or high. Omit for all.",
			},
		},
	}
}

func (t *ShowFindingsTool) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	filter := view.NewFilterState()
	if v, ok := args["risk_level"].(string); ok && v != "" {
		filter.RiskLevel = v
	}
	if v, ok := args["sensitivity"].(string); ok && v != "" {
		filter.Sensitivity = v
	}

	// Tolerate the flattened "args" string some providers send.
	if v, ok := args["args"].(string); ok && !filter.Active() {
		for _, word := range strings.Fields(strings.ToLower(v)) {
			switch word {
			case "low", "medium", "high":
				filter.RiskLevel = word
			}
		}
	}

	if progress != nil {
		progress("Fetching findings...")
	}

	result := t.Resolver.Resolve(ctx, filter)
	if len(result.Findings) == 0 {
		return "No findings matched the requested filters.", nil
	}

	var buf bytes.Buffer
	sorted := (view.SortState{Key: "risk_level", Direction: view.Desc}).Apply(result.Findings)
	t.Table.Findings(&buf, view.Window(sorted, false), len(sorted))
	return buf.String(), nil
}
