package agent

import (
	"context"
	"strings"

	"github.com/hyoaru/ghost-as-a-service/internal/excuse"
)

// GenerateVague asks the agent for a vague, professional-sounding excuse.
// The operation owns its prompt exclusively; the agent is passed in at
// execute time and never stored.
type GenerateVague struct {
	prompt string
}

// NewGenerateVague validates the prompt eagerly so callers observe invalid
// input before any dispatch occurs.
func NewGenerateVague(prompt string) (*GenerateVague, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, excuse.NewInvalidRequest("prompt cannot be empty or whitespace-only")
	}

	return &GenerateVague{prompt: strings.TrimSpace(prompt)}, nil
}

// Prompt returns the validated prompt.
func (g *GenerateVague) Prompt() string { return g.prompt }

// Execute calls the agent's client. This is the boundary where transport
// and provider failures are translated into the domain taxonomy; the raw
// error is kept only as the wrapped cause.
func (g *GenerateVague) Execute(ctx context.Context, agent *ExcuseAgent) (Completion, error) {
	completion, err := agent.Client().CompleteWithSystem(ctx, agent.SystemInstructions(), g.prompt)
	if err != nil {
		return Completion{}, excuse.NewAIService("failed to generate excuse", err)
	}

	if strings.TrimSpace(completion.Text) == "" {
		return Completion{}, excuse.NewAIService("AI backend returned an empty completion", nil)
	}

	if completion.Model == "" {
		completion.Model = agent.Model()
	}

	return completion, nil
}
