package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"horizon/internal/constants"
)

type Config struct {
	Storage StorageConfig `koanf:"storage"`
	AI      AIConfig      `koanf:"ai"`
	Debug   bool          `koanf:"debug"`
}

type StorageConfig struct {
	// Path of the data store. A .json extension selects the JSON file
	// backend, anything else the SQLite backend.
	Path string `koanf:"path"`
}

type AIConfig struct {
	Model       string  `koanf:"model"`
	MaxTokens   int     `koanf:"max_tokens"`
	Temperature float64 `koanf:"temperature"`
	Timeout     int     `koanf:"timeout"`
	// APIKey is the lowest-priority credential source; the keyring and
	// HORIZON_API_KEY take precedence. Kept out of example config files.
	APIKey string `koanf:"api_key"`
}

// Load builds the effective configuration: defaults, then the optional
// YAML file at configPath, then HORIZON_* environment variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		configPath = expandPath(configPath)

		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// HORIZON_STORAGE_PATH -> storage.path, HORIZON_AI_MODEL -> ai.model
	if err := k.Load(env.Provider("HORIZON_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "HORIZON_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Storage.Path = expandPath(cfg.Storage.Path)

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}
	if c.AI.Model == "" {
		return fmt.Errorf("AI model name is required")
	}
	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("ai.max_tokens must be positive")
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		return fmt.Errorf("ai.temperature must be between 0 and 2")
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be positive")
	}
	return nil
}

// ConfigDir is where logs and the default store live.
func ConfigDir() string {
	return expandPath("~/.config/" + constants.AppName)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
