// Package keyring stores quotewiz secrets in the OS keyring. Lookup also
// honours QUOTEWIZ_<NAME> environment variables, which win over the keyring.
package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/quotewiz/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no secret is stored under the name
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Names lists every secret quotewiz knows how to use.
var Names = []string{
	constants.SecretDBConnection,
	constants.SecretSendGridAPIKey,
	constants.SecretTwilioAccountSID,
	constants.SecretTwilioAuthToken,
	constants.SecretWebhookSecret,
}

// Known reports whether name is one of Names.
func Known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

func user(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", "-"))
}

// EnvVar is the environment variable that overrides the named secret.
func EnvVar(name string) string {
	return constants.EnvPrefix + name
}

// Get retrieves a secret from the OS keyring.
// Returns ErrNotFound if nothing is stored under name.
func Get(name string) (string, error) {
	value, err := keyring.Get(constants.AppName, user(name))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return value, nil
}

// Set stores a secret in the OS keyring.
func Set(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	if err := keyring.Set(constants.AppName, user(name), value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", name, err)
	}
	return nil
}

// Delete removes a secret from the OS keyring.
func Delete(name string) error {
	err := keyring.Delete(constants.AppName, user(name))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", name, err)
	}
	return nil
}

// Lookup resolves a secret from the environment, then the keyring. A missing
// secret is not an error; an unreachable keyring is.
func Lookup(name string) (string, error) {
	if v := os.Getenv(EnvVar(name)); v != "" {
		return v, nil
	}
	v, err := Get(name)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return v, err
}

// LookupAll resolves every known secret. Keyring failures are returned
// alongside whatever the environment provided.
func LookupAll() (map[string]string, error) {
	secrets := make(map[string]string, len(Names))
	var errs []error
	for _, name := range Names {
		v, err := Lookup(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v != "" {
			secrets[name] = v
		}
	}
	if len(errs) > 0 {
		return secrets, errs[0]
	}
	return secrets, nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
