package port

import "errors"

// ErrSecretNotFound is returned by SecretStore.Get for an absent secret.
var ErrSecretNotFound = errors.New("secret not found")

// SecretStore is an OS-backed credential store for small secrets.
// Secrets are addressed by service and account.
type SecretStore interface {
	Get(service, account string) (string, error)
	Set(service, account, secret string) error
	Delete(service, account string) error
}
