package keyring

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"

	"horizon/internal/constants"
)

var (
	// ErrNotFound is returned when no credential is stored in the keyring
	ErrNotFound = errors.New("credential not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey retrieves the AI service credential from the OS keyring.
// Returns ErrNotFound if nothing is stored.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetAPIKey stores the AI service credential in the OS keyring.
func SetAPIKey(key string) error {
	if key == "" {
		return errors.New("credential cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store credential in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the AI service credential from the OS keyring.
func DeleteAPIKey() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credential from keyring: %w", err)
	}
	return nil
}

// ResolveAPIKey returns the credential to use for gateway calls:
// keyring first, then the environment override. An empty string means
// no credential is configured, which the gateway treats as permanent
// fallback mode rather than an error.
func ResolveAPIKey() string {
	if key, err := GetAPIKey(); err == nil && key != "" {
		return key
	}
	return os.Getenv(constants.APIKeyEnv)
}
