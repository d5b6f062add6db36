// Package service is the sole entry point for excuse business logic. The
// service owns a repository reference and delegates every call to the
// operation it is handed; all business rules live in the operations.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/hyoaru/ghost-as-a-service/internal/agent"
	"github.com/hyoaru/ghost-as-a-service/internal/config"
	"github.com/hyoaru/ghost-as-a-service/internal/excuse"
	"github.com/hyoaru/ghost-as-a-service/internal/repository"
)

// Operation is the unit of work executed against the service.
type Operation interface {
	Execute(ctx context.Context, svc *ExcuseService) (excuse.Generation, error)
}

// ExcuseService orchestrates excuse generation. It holds no per-request
// state; one instance is safe to share across concurrent invocations.
type ExcuseService struct {
	repo   repository.ExcuseRepository
	logger *zap.Logger
}

// NewExcuseService creates a service around an injected repository. The
// constructor stays free of concrete provider knowledge; use
// NewFromConfig for the default wiring.
func NewExcuseService(repo repository.ExcuseRepository, logger *zap.Logger) *ExcuseService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ExcuseService{
		repo:   repo,
		logger: logger,
	}
}

// NewFromConfig builds the provider chain the configuration selects: the
// static bank, or an AI-backed repository around the configured client.
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ExcuseService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Provider == config.ProviderStatic {
		excuses := cfg.Excuses
		if len(excuses) == 0 {
			excuses = repository.DefaultExcuses
		}
		repo, err := repository.NewStaticRepository(excuses)
		if err != nil {
			return nil, err
		}
		return NewExcuseService(repo, logger), nil
	}

	client, err := agent.NewClientFromConfig(ctx, &agent.ProviderConfig{
		Provider: agent.Provider(cfg.Provider),
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
	})
	if err != nil {
		return nil, err
	}

	a, err := agent.NewExcuseAgentWithClient(agent.Config{
		APIKey:             cfg.APIKey,
		Model:              cfg.Model,
		SystemInstructions: cfg.SystemInstructions,
	}, client)
	if err != nil {
		return nil, err
	}

	return NewExcuseService(repository.NewAgentRepository(a), logger), nil
}

// Execute runs the operation against this service.
func (s *ExcuseService) Execute(ctx context.Context, op Operation) (excuse.Generation, error) {
	return op.Execute(ctx, s)
}

// Repository returns the held repository.
func (s *ExcuseService) Repository() repository.ExcuseRepository { return s.repo }

// Logger returns the service logger.
func (s *ExcuseService) Logger() *zap.Logger { return s.logger }
