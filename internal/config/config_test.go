package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("api key = %q, want empty", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("model = %q, want default", cfg.GeminiModel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-pro")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Port)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("api key = %q", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-2.0-pro" {
		t.Errorf("model = %q", cfg.GeminiModel)
	}
}
