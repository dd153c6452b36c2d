package cli

import (
	"errors"
	"fmt"

	"horizon/internal/keyring"
)

// KeySetCmd stores the AI service credential in the OS keyring.
type KeySetCmd struct {
	Key string `arg:"" help:"API key to store."`
}

func (c *KeySetCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("✓ API key stored in OS keyring")
	return nil
}

// KeyDeleteCmd removes the stored credential.
type KeyDeleteCmd struct{}

func (c *KeyDeleteCmd) Run(ctx *Context) error {
	err := keyring.DeleteAPIKey()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key stored in keyring")
		}
		return err
	}
	fmt.Println("✓ API key deleted from OS keyring")
	return nil
}

// KeyStatusCmd reports whether a credential is available and where it
// would come from.
type KeyStatusCmd struct{}

func (c *KeyStatusCmd) Run(ctx *Context) error {
	_, err := keyring.GetAPIKey()
	switch {
	case err == nil:
		fmt.Println("✓ API key stored in OS keyring")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("ℹ No API key in keyring")
	default:
		fmt.Println("❌ OS keyring is not available on this system")
	}

	if keyring.ResolveAPIKey() == "" && ctx.Config.AI.APIKey == "" {
		fmt.Println("ℹ No credential configured; AI suggestions use built-in fallbacks")
	}
	return nil
}
