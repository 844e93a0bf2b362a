package agent

import (
	"context"
	"fmt"

	"github.com/user/riskdash/pkg/client"
)

// NewProvider builds the chat provider named in the configuration. backend may
// be nil when a direct model provider is selected.
func NewProvider(ctx context.Context, providerName, apiKey, modelName string, backend *client.Client) (LLMProvider, error) {
	switch providerName {
	case "backend":
		if backend == nil {
			return nil, fmt.Errorf("backend provider requires a configured base URL")
		}
		return NewBackendProvider(backend), nil
	case "gemini":
		return NewGeminiProvider(ctx, apiKey, modelName)
	case "openai":
		return NewOpenAIProvider(apiKey, modelName), nil
	case "anthropic":
		return NewAnthropicProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", providerName)
	}
}
