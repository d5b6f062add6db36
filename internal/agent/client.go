// Package agent wraps an AI text-generation backend behind the utility
// tier of the excuse pipeline. The ExcuseAgent holds a live client and
// executes operations against it; concrete clients implement LLMClient
// for each supported provider.
package agent

import "context"

// Completion is the result of one text-generation call.
type Completion struct {
	// Text is the generated text, trimmed.
	Text string

	// Model is the identifier of the model that answered.
	Model string

	// Tokens is the total token usage reported by the provider, zero when
	// the provider reports none.
	Tokens int
}

// LLMClient defines the minimal interface for LLM providers.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (Completion, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (Completion, error)
}
