package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Tool represents a dashboard action the agent can execute on behalf of the user.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error)
	Schema() map[string]interface{} // JSON schema for arguments
}

// ToolCall represents a request from the LLM to execute a tool
type ToolCall struct {
	ToolName string
	Args     map[string]interface{}
}

// Message represents a chat message
type Message struct {
	Role    string // "user", "model", "system"
	Content string
}

// LLMProvider defines the interface for the chat backends: the dashboard's own
// inference endpoint or a directly configured model provider.
type LLMProvider interface {
	GenerateResponse(ctx context.Context, history []Message, tools []Tool) (string, *ToolCall, error)
	ListModels(ctx context.Context) ([]string, error)
}

// Agent drives a chat session, dispatching tool calls requested by the provider.
type Agent struct {
	llm     LLMProvider
	tools   map[string]Tool
	history []Message
	log     *zap.Logger
}

// NewAgent creates a new agent with the given provider.
func NewAgent(llm LLMProvider, log *zap.Logger) *Agent {
	if log == nil {
		log = zap.NewNop()
	}
	return &Agent{
		llm:   llm,
		tools: make(map[string]Tool),
		log:   log,
	}
}

// RegisterTool adds a tool to the agent's registry.
func (a *Agent) RegisterTool(t Tool) {
	a.tools[t.Name()] = t
}

// SetSystemPrompt seeds the conversation with a system message.
func (a *Agent) SetSystemPrompt(prompt string) {
	if prompt == "" {
		return
	}
	a.history = append([]Message{{Role: "system", Content: prompt}}, a.history...)
}

// Chat sends a message to the agent and returns the response. When the
// provider requests a tool, the result is fed back into the conversation and
// generation continues until the provider answers with plain text.
func (a *Agent) Chat(ctx context.Context, input string, progress func(string)) (string, error) {
	a.history = append(a.history, Message{Role: "user", Content: input})

	for {
		toolList := make([]Tool, 0, len(a.tools))
		for _, t := range a.tools {
			toolList = append(toolList, t)
		}

		respText, toolCall, err := a.llm.GenerateResponse(ctx, a.history, toolList)
		if err != nil {
			return "", err
		}

		// Plain text answer ends the turn.
		if toolCall == nil {
			a.history = append(a.history, Message{Role: "model", Content: respText})
			return respText, nil
		}

		a.log.Debug("executing tool",
			zap.String("tool", toolCall.ToolName),
			zap.Any("args", toolCall.Args))

		a.history = append(a.history, Message{
			Role:    "model",
			Content: fmt.Sprintf("I will call tool %s with args %v", toolCall.ToolName, toolCall.Args),
		})

		tool, exists := a.tools[toolCall.ToolName]
		if !exists {
			a.history = append(a.history, Message{
				Role:    "function",
				Content: fmt.Sprintf("Error: tool %s not found", toolCall.ToolName),
			})
			continue
		}

		result, err := tool.Execute(ctx, toolCall.Args, progress)
		if err != nil {
			result = fmt.Sprintf("Error executing tool: %v", err)
		}

		a.history = append(a.history, Message{
			Role:    "function",
			Content: fmt.Sprintf("Tool %s returned: %s", toolCall.ToolName, result),
		})
	}
}
