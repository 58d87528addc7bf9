package keyring

import (
	"context"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pastor/internal/application/port"
)

func TestAdapter_RoundTrip(t *testing.T) {
	gokeyring.MockInit()
	a := New()

	_, err := a.Get(ServiceName, "missing")
	require.ErrorIs(t, err, port.ErrSecretNotFound)

	require.NoError(t, a.Set(ServiceName, "acct", "value"))
	got, err := a.Get(ServiceName, "acct")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	require.NoError(t, a.Delete(ServiceName, "acct"))
	require.ErrorIs(t, a.Delete(ServiceName, "acct"), port.ErrSecretNotFound)
}

func TestKeyProvider_WithMockKeyring_IsStable(t *testing.T) {
	gokeyring.MockInit()
	p := NewKeyProvider(New(), "com.pastor.encryptionKeyStable")

	first, err := p.GetOrCreateKey(context.Background())
	require.NoError(t, err)
	second, err := p.GetOrCreateKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, p.DeleteKey(context.Background()))
	third, err := p.GetOrCreateKey(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}
