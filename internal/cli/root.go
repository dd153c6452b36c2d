// Package cli holds the kong command implementations. Each command
// loads the store it needs; the TUI command hands everything to the
// interactive program.
package cli

import (
	"time"

	"horizon/internal/config"
	"horizon/internal/gateway"
	"horizon/internal/keyring"
	"horizon/internal/logger"
	"horizon/internal/repository"
	"horizon/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config *config.Config
}

// OpenRepository loads the store and wraps it. Commands that only read
// or mutate events go through this.
func (c *Context) OpenRepository() (*repository.Repository, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	return repository.New(c.Store), nil
}

// Gateway builds the suggestion gateway. Credential resolution order:
// OS keyring, HORIZON_API_KEY, then the config file. With no credential
// anywhere the gateway runs in fallback mode instead of failing.
func (c *Context) Gateway() *gateway.Gateway {
	timeout := time.Duration(c.Config.AI.Timeout) * time.Second

	key := keyring.ResolveAPIKey()
	if key == "" {
		key = c.Config.AI.APIKey
	}
	if key == "" {
		logger.Debug("no AI credential configured, suggestions use fallbacks")
		return gateway.New(nil, timeout)
	}

	completer, err := gateway.NewDeepSeekCompleter(key, c.Config.AI)
	if err != nil {
		logger.Warn("failed to build AI client, suggestions use fallbacks", "error", err)
		return gateway.New(nil, timeout)
	}
	return gateway.New(completer, timeout)
}
