package cli

import "fmt"

// ConfigShowCmd prints the effective configuration after defaults, the
// config file, and environment overrides are merged.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	cfg := ctx.Config

	fmt.Println("Effective configuration:")
	fmt.Printf("  storage.path:   %s\n", cfg.Storage.Path)
	fmt.Printf("  ai.model:       %s\n", cfg.AI.Model)
	fmt.Printf("  ai.max_tokens:  %d\n", cfg.AI.MaxTokens)
	fmt.Printf("  ai.temperature: %g\n", cfg.AI.Temperature)
	fmt.Printf("  ai.timeout:     %ds\n", cfg.AI.Timeout)
	fmt.Printf("  ai.api_key:     %s\n", maskKey(cfg.AI.APIKey))
	fmt.Printf("  debug:          %t\n", cfg.Debug)
	return nil
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
