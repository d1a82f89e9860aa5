package keyring

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"

	"github.com/daftar-app/daftar/internal/constants"
)

// EnvAPIKey is the environment fallback consulted when the OS keyring
// holds no advisor key.
const EnvAPIKey = "DAFTAR_ADVISOR_API_KEY"

var (
	// ErrNotFound is returned when no API key is stored anywhere
	ErrNotFound = errors.New("advisor API key not found")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey retrieves the advisor API key from the OS keyring, falling
// back to the environment. Returns ErrNotFound if neither is set.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err == nil && key != "" {
		return key, nil
	}
	if env := os.Getenv(EnvAPIKey); env != "" {
		return env, nil
	}
	if err != nil && err != keyring.ErrNotFound {
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return "", ErrNotFound
}

// SetAPIKey stores the advisor API key in the OS keyring.
func SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the advisor API key from the OS keyring.
func DeleteAPIKey() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	return nil
}
