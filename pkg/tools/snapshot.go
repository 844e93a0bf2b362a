package tools

import (
	"context"
	"fmt"

	"github.com/user/riskdash/pkg/client"
	"github.com/user/riskdash/pkg/snapshot"
	"github.com/user/riskdash/pkg/view"
)

// SaveSnapshotTool saves the current findings as a baseline file.
type SaveSnapshotTool struct {
	Resolver *client.Resolver
}

func (t *SaveSnapshotTool) Name() string {
	return "SaveSnapshot"
}

func (t *SaveSnapshotTool) Description() string {
	return "Saves the current findings to a snapshot file for future comparison."
}

func (t *SaveSnapshotTool) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"filename": map[string]interface{}{
				"type":        "string",
				"description": "Optional filename for the snapshot (default: " + snapshot.DefaultPath + ")",
			},
		},
	}
}

func (t *SaveSnapshotTool) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	filename := snapshot.DefaultPath
	if v, ok := args["filename"].(string); ok && v != "" {
		filename = v
	}

	result := t.Resolver.Resolve(ctx, view.NewFilterState())
	if err := snapshot.Save(filename, result.Findings); err != nil {
		return fmt.Sprintf("Error saving snapshot: %v", err), nil
	}
	return fmt.Sprintf("Successfully saved %d findings to snapshot '%s'.", len(result.Findings), filename), nil
}

// CompareSnapshotTool diffs current findings against a saved baseline.
type CompareSnapshotTool struct {
	Resolver *client.Resolver
}

func (t *CompareSnapshotTool) Name() string {
	return "CompareWithBaseline"
}

func (t *CompareSnapshotTool) Description() string {
	return "Compares the current findings against a previously saved snapshot to identify new, resolved, and unchanged findings."
}

func (t *CompareSnapshotTool) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"filename": map[string]interface{}{
				"type":        "string",
				"description": "Optional filename of the baseline snapshot (default: " + snapshot.DefaultPath + ")",
			},
		},
	}
}

func (t *CompareSnapshotTool) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	filename := snapshot.DefaultPath
	if v, ok := args["filename"].(string); ok && v != "" {
		filename = v
	}

	baseline, err := snapshot.Load(filename)
	if err != nil {
		return fmt.Sprintf("Error loading baseline snapshot '%s': %v. Have you saved a snapshot before?", filename, err), nil
	}

	result := t.Resolver.Resolve(ctx, view.NewFilterState())
	diff := snapshot.Compare(result.Findings, baseline)
	return diff.Render(filename), nil
}
