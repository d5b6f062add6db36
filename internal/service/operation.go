package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hyoaru/ghost-as-a-service/internal/excuse"
)

// GenerateExcuse produces an excuse for a request describing the social
// obligation to decline. Repeated calls against the AI-backed provider are
// expectedly non-deterministic; only a fixed static bank is idempotent.
type GenerateExcuse struct {
	request string
}

// NewGenerateExcuse validates the trimmed request eagerly so invalid input
// is observed before any dispatch occurs.
func NewGenerateExcuse(request string) (*GenerateExcuse, error) {
	if strings.TrimSpace(request) == "" {
		return nil, excuse.NewInvalidRequest("request cannot be empty or whitespace-only")
	}

	return &GenerateExcuse{request: strings.TrimSpace(request)}, nil
}

// Request returns the validated request.
func (g *GenerateExcuse) Request() string { return g.request }

// Execute builds the repository operation through the repository's own
// factory and returns its result unchanged. Repository errors propagate
// untouched.
func (g *GenerateExcuse) Execute(ctx context.Context, svc *ExcuseService) (excuse.Generation, error) {
	op, err := svc.Repository().NewGetExcuse(g.request)
	if err != nil {
		return excuse.Generation{}, err
	}

	generation, err := svc.Repository().Execute(ctx, op)
	if err != nil {
		return excuse.Generation{}, err
	}

	svc.Logger().Debug("excuse generated",
		zap.Int("request_len", len(g.request)),
		zap.Int("excuse_len", len(generation.Excuse)))

	return generation, nil
}
