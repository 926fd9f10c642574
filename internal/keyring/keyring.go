package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/smartsched/internal/constants"
)

var (
	// ErrNotFound is returned when no remote key is stored in the keyring
	ErrNotFound = errors.New("remote key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetRemoteKey retrieves the remote store API key from the OS keyring.
// Returns ErrNotFound if none is stored.
func GetRemoteKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetRemoteKey stores the remote store API key in the OS keyring.
func SetRemoteKey(key string) error {
	if key == "" {
		return errors.New("remote key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store remote key in keyring: %w", err)
	}
	return nil
}

// DeleteRemoteKey removes the remote store API key from the OS keyring.
func DeleteRemoteKey() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete remote key from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// Best-effort; may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
