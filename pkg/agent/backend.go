package agent

import (
	"context"

	"github.com/user/riskdash/pkg/client"
)

// BackendProvider proxies chat turns to the dashboard backend's inference
// endpoint. The backend picks its own model and never requests tool calls, so
// only the latest user message is forwarded.
type BackendProvider struct {
	Client *client.Client
}

func NewBackendProvider(c *client.Client) *BackendProvider {
	return &BackendProvider{Client: c}
}

func (p *BackendProvider) ListModels(ctx context.Context) ([]string, error) {
	// Model selection happens server side.
	return []string{"backend-default"}, nil
}

func (p *BackendProvider) GenerateResponse(ctx context.Context, history []Message, tools []Tool) (string, *ToolCall, error) {
	query := ""
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			query = history[i].Content
			break
		}
	}

	resp, err := p.Client.Chat(ctx, query)
	if err != nil {
		return "", nil, err
	}
	text := resp.Response
	if resp.LLMUsed != "" {
		text += "\n\n(answered by " + resp.LLMUsed + ")"
	}
	return text, nil, nil
}
