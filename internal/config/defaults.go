package config

import (
	"github.com/knadh/koanf/providers/confmap"

	"horizon/internal/constants"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"storage": map[string]interface{}{
			"path": "~/.config/" + constants.AppName + "/" + constants.AppName + ".db",
		},
		"ai": map[string]interface{}{
			"model":       "deepseek-chat",
			"max_tokens":  1024,
			"temperature": 1.0,
			"timeout":     30,
			"api_key":     "",
		},
		"debug": false,
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}
