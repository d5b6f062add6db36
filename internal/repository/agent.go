package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyoaru/ghost-as-a-service/internal/agent"
	"github.com/hyoaru/ghost-as-a-service/internal/excuse"
)

// AgentRepository generates excuses through the AI-backed excuse agent.
type AgentRepository struct {
	agent *agent.ExcuseAgent
}

// NewAgentRepository creates an AI-backed repository around an injected
// agent.
func NewAgentRepository(a *agent.ExcuseAgent) *AgentRepository {
	return &AgentRepository{agent: a}
}

// Execute dispatches the operation against this repository.
func (r *AgentRepository) Execute(ctx context.Context, op Operation) (excuse.Generation, error) {
	return op.Execute(ctx, r)
}

// NewGetExcuse builds the operation written for this provider.
func (r *AgentRepository) NewGetExcuse(request string) (Operation, error) {
	return NewGetGeneratedExcuse(request)
}

// Agent returns the held excuse agent.
func (r *AgentRepository) Agent() *agent.ExcuseAgent { return r.agent }

// GetGeneratedExcuse asks the agent repository's AI backend for an excuse.
type GetGeneratedExcuse struct {
	request string
}

// NewGetGeneratedExcuse validates the request eagerly.
func NewGetGeneratedExcuse(request string) (*GetGeneratedExcuse, error) {
	if strings.TrimSpace(request) == "" {
		return nil, excuse.NewInvalidRequest("request text cannot be empty")
	}

	return &GetGeneratedExcuse{request: strings.TrimSpace(request)}, nil
}

// Request returns the validated request.
func (g *GetGeneratedExcuse) Request() string { return g.request }

// Execute confirms it received the agent-backed provider before touching
// its agent, then delegates with a prompt built from the request. Agent
// errors propagate unchanged.
func (g *GetGeneratedExcuse) Execute(ctx context.Context, repo ExcuseRepository) (excuse.Generation, error) {
	ar, ok := repo.(*AgentRepository)
	if !ok {
		return excuse.Generation{}, excuse.NewProviderMismatch(
			fmt.Sprintf("expected *AgentRepository, got %T", repo))
	}

	prompt := fmt.Sprintf(
		"Generate an excuse to decline the following request or invitation: %q. "+
			"Make me sound stressed, professional, and too busy to explain further.",
		g.request)

	op, err := agent.NewGenerateVague(prompt)
	if err != nil {
		return excuse.Generation{}, err
	}

	completion, err := ar.Agent().Execute(ctx, op)
	if err != nil {
		return excuse.Generation{}, err
	}

	return excuse.Generation{
		Excuse: completion.Text,
		Metadata: &excuse.Metadata{
			Model:  completion.Model,
			Tokens: completion.Tokens,
		},
	}, nil
}
