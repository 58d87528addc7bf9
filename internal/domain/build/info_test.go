package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentProfile(t *testing.T) {
	t.Setenv("ENV", "dev")
	assert.Equal(t, ProfileDev, CurrentProfile())

	t.Setenv("ENV", "")
	assert.Equal(t, ProfileRelease, CurrentProfile())
}

func TestProfile_NamesDoNotCollide(t *testing.T) {
	assert.NotEqual(t, ProfileRelease.HistoryFileName(), ProfileDev.HistoryFileName())
	assert.NotEqual(t, ProfileRelease.KeyName(), ProfileDev.KeyName())
	assert.Equal(t, "clipboardfile", ProfileRelease.HistoryFileName())
	assert.Equal(t, "com.pastor.encryptionKey", ProfileRelease.KeyName())
}
