package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hyoaru/ghost-as-a-service/internal/excuse"
)

// DefaultExcuses seeds the static bank when no override is configured.
var DefaultExcuses = []string{
	"Sorry, I'm neck-deep in a critical data migration and my bandwidth is throttled by legacy infrastructure issues. Let's circle back in Q3?",
	"I'd love to, but I'm currently fire-fighting some cascading microservice failures. The technical debt is real right now.",
	"Unfortunately, I'm blocked by a dependency chain issue that's impacting our entire deployment pipeline. Rain check?",
	"I'm swamped with an emergency sprint to patch some critical vulnerabilities in our production environment. Let me ping you next quarter.",
	"Can't make it - I'm deep in the weeds troubleshooting a distributed systems nightmare with cross-region replication lag.",
	"I'm stuck in back-to-back syncs with stakeholders about our infrastructure roadmap. Maybe we can revisit this in the next planning cycle?",
	"Sorry, I'm currently deprecating some legacy endpoints and the refactoring effort is consuming all my cycles right now.",
	"I'm underwater with a massive schema migration that's blocking half the engineering org. Let's touch base after we ship this.",
	"Unfortunately, I'm being pulled into an all-hands-on-deck situation to resolve some cascading failures in our observability stack.",
	"I'd love to help, but I'm currently architecting a solution for our scalability bottlenecks and it's taking up all my bandwidth.",
}

// StaticRepository serves excuses from an in-memory ordered bank.
// Selection policy: round-robin over the bank in order, so a single-entry
// bank always returns the same excuse. The cursor is the only mutable
// field and is mutex-guarded; no per-request state is held.
type StaticRepository struct {
	excuses []string

	mu   sync.Mutex
	next int
}

// NewStaticRepository creates a static-bank repository. Blank entries are
// dropped; an empty bank is a configuration error.
func NewStaticRepository(excuses []string) (*StaticRepository, error) {
	bank := make([]string, 0, len(excuses))
	for _, e := range excuses {
		if strings.TrimSpace(e) != "" {
			bank = append(bank, e)
		}
	}

	if len(bank) == 0 {
		return nil, excuse.NewConfiguration("no excuses available in the static bank")
	}

	return &StaticRepository{excuses: bank}, nil
}

// Execute dispatches the operation against this repository.
func (r *StaticRepository) Execute(ctx context.Context, op Operation) (excuse.Generation, error) {
	return op.Execute(ctx, r)
}

// NewGetExcuse builds the operation written for this provider.
func (r *StaticRepository) NewGetExcuse(request string) (Operation, error) {
	return NewGetStoredExcuse(request)
}

// Size returns the number of excuses in the bank.
func (r *StaticRepository) Size() int { return len(r.excuses) }

// nextExcuse advances the round-robin cursor.
func (r *StaticRepository) nextExcuse() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.excuses[r.next]
	r.next = (r.next + 1) % len(r.excuses)
	return e
}

// GetStoredExcuse selects an excuse from the static bank. The request is
// validated but does not influence selection.
type GetStoredExcuse struct {
	request string
}

// NewGetStoredExcuse validates the request eagerly.
func NewGetStoredExcuse(request string) (*GetStoredExcuse, error) {
	if strings.TrimSpace(request) == "" {
		return nil, excuse.NewInvalidRequest("request text cannot be empty")
	}

	return &GetStoredExcuse{request: strings.TrimSpace(request)}, nil
}

// Execute confirms it received the static-bank provider, then returns the
// next excuse in round-robin order. No metadata is attached.
func (g *GetStoredExcuse) Execute(ctx context.Context, repo ExcuseRepository) (excuse.Generation, error) {
	sr, ok := repo.(*StaticRepository)
	if !ok {
		return excuse.Generation{}, excuse.NewProviderMismatch(
			fmt.Sprintf("expected *StaticRepository, got %T", repo))
	}

	return excuse.Generation{Excuse: sr.nextExcuse()}, nil
}
