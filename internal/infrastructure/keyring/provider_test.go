package keyring

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pastor/internal/application/port"
	portmocks "github.com/bnema/pastor/internal/application/port/mocks"
	perrors "github.com/bnema/pastor/internal/errors"
)

const testKeyName = "com.pastor.encryptionKeyTest"

func TestGetOrCreateKey_ReturnsStoredKey(t *testing.T) {
	store := portmocks.NewMockSecretStore(t)
	stored := make([]byte, KeySize)
	for i := range stored {
		stored[i] = byte(i)
	}
	store.EXPECT().Get(ServiceName, testKeyName).Return(base64.StdEncoding.EncodeToString(stored), nil)

	key, err := NewKeyProvider(store, testKeyName).GetOrCreateKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SymmetricKey(stored), key)
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrCreateKey_CreatesWhenAbsent(t *testing.T) {
	store := portmocks.NewMockSecretStore(t)
	store.EXPECT().Get(ServiceName, testKeyName).Return("", port.ErrSecretNotFound)

	var written string
	store.EXPECT().Set(ServiceName, testKeyName, mock.AnythingOfType("string")).
		Run(func(_, _, secret string) { written = secret }).
		Return(nil)

	key, err := NewKeyProvider(store, testKeyName).GetOrCreateKey(context.Background())
	require.NoError(t, err)
	require.Len(t, key, KeySize)

	decoded, err := base64.StdEncoding.DecodeString(written)
	require.NoError(t, err)
	assert.Equal(t, []byte(key), decoded)
}

func TestGetOrCreateKey_ReplacesMalformedKey(t *testing.T) {
	tests := map[string]string{
		"not base64": "%%%not-base64%%%",
		"too short":  base64.StdEncoding.EncodeToString([]byte("short")),
		"too long":   base64.StdEncoding.EncodeToString(make([]byte, KeySize+1)),
	}

	for name, stored := range tests {
		t.Run(name, func(t *testing.T) {
			store := portmocks.NewMockSecretStore(t)
			store.EXPECT().Get(ServiceName, testKeyName).Return(stored, nil)
			store.EXPECT().Set(ServiceName, testKeyName, mock.AnythingOfType("string")).Return(nil)

			key, err := NewKeyProvider(store, testKeyName).GetOrCreateKey(context.Background())
			require.NoError(t, err)
			assert.Len(t, key, KeySize)
		})
	}
}

func TestGetOrCreateKey_ReadFailureIsKeyStoreError(t *testing.T) {
	store := portmocks.NewMockSecretStore(t)
	store.EXPECT().Get(ServiceName, testKeyName).Return("", errors.New("dbus unavailable"))

	key, err := NewKeyProvider(store, testKeyName).GetOrCreateKey(context.Background())
	require.Error(t, err)
	assert.Nil(t, key)
	assert.True(t, perrors.Is(err, perrors.ErrKeyStore))
}

func TestGetOrCreateKey_WriteFailureIsKeyStoreError(t *testing.T) {
	store := portmocks.NewMockSecretStore(t)
	store.EXPECT().Get(ServiceName, testKeyName).Return("", port.ErrSecretNotFound)
	store.EXPECT().Set(ServiceName, testKeyName, mock.Anything).Return(errors.New("locked collection"))

	_, err := NewKeyProvider(store, testKeyName).GetOrCreateKey(context.Background())
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.ErrKeyStore))
}

func TestDeleteKey(t *testing.T) {
	store := portmocks.NewMockSecretStore(t)
	store.EXPECT().Delete(ServiceName, testKeyName).Return(port.ErrSecretNotFound).Once()
	store.EXPECT().Delete(ServiceName, testKeyName).Return(errors.New("denied")).Once()

	p := NewKeyProvider(store, testKeyName)
	require.NoError(t, p.DeleteKey(context.Background()), "missing key is not an error")

	err := p.DeleteKey(context.Background())
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.ErrKeyStore))
}

func TestSymmetricKey_StringIsRedacted(t *testing.T) {
	key := SymmetricKey([]byte("super-secret-key-material-000000"))
	assert.Equal(t, "[redacted]", key.String())
	assert.NotContains(t, key.String(), "secret")
}
