package agent

import (
	"context"
	"strings"

	"github.com/hyoaru/ghost-as-a-service/internal/excuse"
)

// DefaultSystemInstructions sets the tone of generated excuses: vague,
// corporate-sounding, plausible.
const DefaultSystemInstructions = "You are a vague excuse generator. Generate plausible but " +
	"meaningless excuses using corporate jargon and technical terms. Be creative but " +
	"professional. Keep responses concise (1-2 sentences). Use terms like 'bandwidth', " +
	"'technical debt', 'sprint', 'migration', 'infrastructure', 'optimization', etc. " +
	"to sound busy but vague."

// Config holds the configuration handed to the excuse agent.
type Config struct {
	// APIKey is the provider credential. Required.
	APIKey string

	// Model is the model identifier. Defaults to DefaultGeminiModel.
	Model string

	// SystemInstructions describe the tone of generated text. Defaults to
	// DefaultSystemInstructions.
	SystemInstructions string
}

// Operation is the unit of work executed against the excuse agent. The
// agent passes itself to the operation so it can reach the held client.
type Operation interface {
	Execute(ctx context.Context, agent *ExcuseAgent) (Completion, error)
}

// ExcuseAgent wraps a live LLM client. It carries no per-request state, so
// one instance is safe to share across concurrent invocations.
type ExcuseAgent struct {
	client             LLMClient
	model              string
	systemInstructions string
}

// NewExcuseAgent creates an agent with the default Gemini client. The empty
// credential check is the single fail-fast gate protecting all downstream
// calls; no network I/O happens here.
func NewExcuseAgent(cfg Config) (*ExcuseAgent, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, excuse.NewConfiguration("API key is not configured")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	client := NewGeminiClient(cfg.APIKey)
	client.SetModel(model)

	return newExcuseAgent(cfg, client, model), nil
}

// NewExcuseAgentWithClient creates an agent around an injected client. Used
// by the provider factory and by tests substituting a stub backend.
func NewExcuseAgentWithClient(cfg Config, client LLMClient) (*ExcuseAgent, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, excuse.NewConfiguration("API key is not configured")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	return newExcuseAgent(cfg, client, model), nil
}

func newExcuseAgent(cfg Config, client LLMClient, model string) *ExcuseAgent {
	instructions := cfg.SystemInstructions
	if instructions == "" {
		instructions = DefaultSystemInstructions
	}

	return &ExcuseAgent{
		client:             client,
		model:              model,
		systemInstructions: instructions,
	}
}

// Execute runs the operation against this agent.
func (a *ExcuseAgent) Execute(ctx context.Context, op Operation) (Completion, error) {
	return op.Execute(ctx, a)
}

// Client returns the held LLM client.
func (a *ExcuseAgent) Client() LLMClient { return a.client }

// Model returns the configured model identifier.
func (a *ExcuseAgent) Model() string { return a.model }

// SystemInstructions returns the configured system instructions.
func (a *ExcuseAgent) SystemInstructions() string { return a.systemInstructions }
