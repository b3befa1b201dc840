package llm

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MATHAI_LLM_PROVIDER", "anthropic")
	t.Setenv("MATHAI_ANTHROPIC_API_KEY", "test-key")
	t.Setenv("MATHAI_ANTHROPIC_MODEL", "claude-sonnet")

	cfg := ConfigFromEnv()

	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "test-key" {
		t.Errorf("api key = %q, want test-key", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("model = %q, want claude-sonnet", cfg.Anthropic.Model)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "a")
	t.Setenv("OPENROUTER_API_KEY", "r")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini (highest priority)", cfg.Provider)
	}
}

func TestDiscoverConfigNoneFound(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-2.5-pro-exp", "gemini-2.5-pro-exp"}, // unmapped passes through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
