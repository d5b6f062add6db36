// Package repository provides excuses to the service tier. Two providers
// implement the same contract: an AI-backed provider delegating to the
// excuse agent, and a static bank of prepopulated excuses. Callers never
// learn which provider answered.
package repository

import (
	"context"

	"github.com/hyoaru/ghost-as-a-service/internal/excuse"
)

// Operation is the unit of work executed against a repository. Operations
// are written against one concrete provider's internal state and must
// self-defend when attached to a foreign provider.
type Operation interface {
	Execute(ctx context.Context, repo ExcuseRepository) (excuse.Generation, error)
}

// ExcuseRepository is the capability set the service tier depends on.
// Execute dispatches an operation; NewGetExcuse builds the operation
// matching this provider, which keeps provider-blind callers from pairing
// an operation with the wrong implementation.
type ExcuseRepository interface {
	Execute(ctx context.Context, op Operation) (excuse.Generation, error)
	NewGetExcuse(request string) (Operation, error)
}
