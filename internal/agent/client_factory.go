package agent

import (
	"context"
	"fmt"
	"os"
)

// Provider identifies an LLM client backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderGeminiSDK Provider = "gemini-sdk"
	ProviderAnthropic Provider = "anthropic"
)

// ProviderConfig holds the resolved provider and credential.
type ProviderConfig struct {
	Provider Provider
	APIKey   string
	Model    string // optional model override
}

// DetectProvider resolves a provider from environment variables.
// Priority: GEMINI_API_KEY > ANTHROPIC_API_KEY.
func DetectProvider() (*ProviderConfig, error) {
	providers := []struct {
		envVar   string
		provider Provider
	}{
		{"GEMINI_API_KEY", ProviderGemini},
		{"ANTHROPIC_API_KEY", ProviderAnthropic},
	}

	for _, p := range providers {
		if key := os.Getenv(p.envVar); key != "" {
			return &ProviderConfig{
				Provider: p.provider,
				APIKey:   key,
			}, nil
		}
	}

	return nil, fmt.Errorf("no API key found; set one of: GEMINI_API_KEY, ANTHROPIC_API_KEY")
}

// NewClientFromConfig creates an LLM client from a provider config.
func NewClientFromConfig(ctx context.Context, config *ProviderConfig) (LLMClient, error) {
	switch config.Provider {
	case ProviderGemini, "":
		client := NewGeminiClient(config.APIKey)
		if config.Model != "" {
			client.SetModel(config.Model)
		}
		return client, nil

	case ProviderGeminiSDK:
		return NewGenAIClient(ctx, config.APIKey, config.Model)

	case ProviderAnthropic:
		client := NewAnthropicClient(config.APIKey)
		if config.Model != "" {
			client.SetModel(config.Model)
		}
		return client, nil

	default:
		return nil, fmt.Errorf("unknown provider: %s (valid: gemini, gemini-sdk, anthropic)", config.Provider)
	}
}
