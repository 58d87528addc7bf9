package xdg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pastor/internal/domain/build"
)

func TestAdapter_FollowsXDGVariables(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	adapter := New(build.ProfileRelease)

	configFile, err := adapter.ConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", "pastor", "config.toml"), configFile)

	dataDir, err := adapter.DataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "pastor"), dataDir)

	logDir, err := adapter.LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "state", "pastor", "logs"), logDir)

	manDir, err := adapter.ManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "man", "man1"), manDir)
}

func TestAdapter_HistoryFilePerProfile(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", root)

	release, err := New(build.ProfileRelease).HistoryFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "pastor", "clipboardfile"), release)

	dev, err := New(build.ProfileDev).HistoryFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "pastor", "clipboardfileDebug"), dev)
}

func TestAdapter_DevModeUsesWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("ENV", "dev")

	dataDir, err := New(build.ProfileDev).DataDir()
	require.NoError(t, err)

	// The temp dir may be reached through a symlink (macOS /var).
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Contains(t, []string{filepath.Join(dir, ".dev", "pastor"), filepath.Join(resolved, ".dev", "pastor")}, dataDir)
}
