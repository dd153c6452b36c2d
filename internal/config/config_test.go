package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AI.Model != "deepseek-chat" {
		t.Errorf("default model = %q, want deepseek-chat", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 30 {
		t.Errorf("default timeout = %d, want 30", cfg.AI.Timeout)
	}
	if cfg.Storage.Path == "" {
		t.Error("default storage path is empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "ai:\n  model: deepseek-reasoner\n  timeout: 5\nstorage:\n  path: " + filepath.Join(dir, "data.json") + "\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AI.Model != "deepseek-reasoner" {
		t.Errorf("model = %q, want deepseek-reasoner", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 5 {
		t.Errorf("timeout = %d, want 5", cfg.AI.Timeout)
	}
	// Untouched keys keep their defaults
	if cfg.AI.MaxTokens != 1024 {
		t.Errorf("max_tokens = %d, want default 1024", cfg.AI.MaxTokens)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HORIZON_AI_MODEL", "custom-model")
	t.Setenv("HORIZON_STORAGE_PATH", "/tmp/horizon-test.json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AI.Model != "custom-model" {
		t.Errorf("model = %q, want custom-model", cfg.AI.Model)
	}
	if cfg.Storage.Path != "/tmp/horizon-test.json" {
		t.Errorf("storage path = %q, want /tmp/horizon-test.json", cfg.Storage.Path)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg.AI.Temperature = 3
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for temperature out of range")
	}

	cfg, _ = Load("")
	cfg.AI.MaxTokens = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-positive max_tokens")
	}
}
