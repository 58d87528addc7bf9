// Package keyring provides the OS credential store adapter and the
// encryption key lifecycle built on top of it.
package keyring

import (
	"errors"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/bnema/pastor/internal/application/port"
)

// Adapter implements port.SecretStore using the platform credential store
// (Secret Service on Linux, Keychain on macOS, Credential Manager on Windows).
type Adapter struct{}

// New creates a new credential store adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Get(service, account string) (string, error) {
	secret, err := gokeyring.Get(service, account)
	if errors.Is(err, gokeyring.ErrNotFound) {
		return "", port.ErrSecretNotFound
	}
	return secret, err
}

func (a *Adapter) Set(service, account, secret string) error {
	return gokeyring.Set(service, account, secret)
}

func (a *Adapter) Delete(service, account string) error {
	err := gokeyring.Delete(service, account)
	if errors.Is(err, gokeyring.ErrNotFound) {
		return port.ErrSecretNotFound
	}
	return err
}

var _ port.SecretStore = (*Adapter)(nil)
