package llm

import (
	"context"
	"fmt"

	"github.com/abenov/mathai/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a Provider from MATHAI_* environment variables,
// falling back to discovery of standard API key variables.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
