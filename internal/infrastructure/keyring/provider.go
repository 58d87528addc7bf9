package keyring

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/bnema/pastor/internal/application/port"
	perrors "github.com/bnema/pastor/internal/errors"
	"github.com/bnema/pastor/internal/logging"
)

const (
	// ServiceName groups every pastor secret in the credential store.
	ServiceName = "pastor"

	// KeySize is the symmetric key length in bytes (256-bit).
	KeySize = 32
)

// SymmetricKey is raw key material for the history cipher.
type SymmetricKey []byte

// String redacts the key so it never ends up in logs or error messages.
func (k SymmetricKey) String() string {
	return "[redacted]"
}

// KeyProvider obtains or creates the persistent history encryption key.
type KeyProvider struct {
	store   port.SecretStore
	service string
	account string
}

// NewKeyProvider creates a provider for the named key.
// keyName differs between build profiles so their keys never collide.
func NewKeyProvider(store port.SecretStore, keyName string) *KeyProvider {
	return &KeyProvider{
		store:   store,
		service: ServiceName,
		account: keyName,
	}
}

// GetOrCreateKey returns the stored key, generating and storing a new one
// when it is absent or malformed.
func (p *KeyProvider) GetOrCreateKey(ctx context.Context) (SymmetricKey, error) {
	log := logging.FromContext(ctx)

	encoded, err := p.store.Get(p.service, p.account)
	switch {
	case err == nil:
		if key, ok := decodeKey(encoded); ok {
			return key, nil
		}
		log.Warn().Str("account", p.account).Msg("stored encryption key is malformed, replacing it")
	case errors.Is(err, port.ErrSecretNotFound):
		log.Debug().Str("account", p.account).Msg("no encryption key stored, creating one")
	default:
		return nil, perrors.NewKeyStore("read key", err)
	}

	key := make(SymmetricKey, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, perrors.NewKeyStore("generate key", err)
	}

	if err := p.store.Set(p.service, p.account, base64.StdEncoding.EncodeToString(key)); err != nil {
		return nil, perrors.NewKeyStore("store key", err)
	}

	log.Info().Str("account", p.account).Msg("encryption key created")
	return key, nil
}

// DeleteKey removes the stored key. A missing key is not an error.
func (p *KeyProvider) DeleteKey(_ context.Context) error {
	err := p.store.Delete(p.service, p.account)
	if err == nil || errors.Is(err, port.ErrSecretNotFound) {
		return nil
	}
	return perrors.NewKeyStore("delete key", fmt.Errorf("account %s: %w", p.account, err))
}

func decodeKey(encoded string) (SymmetricKey, bool) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) != KeySize {
		return nil, false
	}
	return SymmetricKey(raw), true
}
