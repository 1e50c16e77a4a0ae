package llm

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini default, got %q", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Fatalf("expected 3 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("EDUAI_LLM_PROVIDER", "openai")
	t.Setenv("EDUAI_OPENAI_API_KEY", "sk-test")
	t.Setenv("EDUAI_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("expected key from env, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("expected model override, got %q", cfg.OpenAI.Model)
	}
}

func TestDiscoverConfig_PrefersGemini(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Fatalf("expected gemini to win discovery, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("unexpected key: %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys")
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for gemini without a key")
	}

	cfg.Gemini.APIKey = "g-key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "llama-at-home"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestModelFor(t *testing.T) {
	if got := modelFor("gemini-flash", geminiModels); got != "gemini-2.5-flash" {
		t.Fatalf("unexpected resolution: %q", got)
	}
	if got := modelFor("gemini-exp-9999", geminiModels); got != "gemini-exp-9999" {
		t.Fatalf("unknown names must pass through, got %q", got)
	}
}
