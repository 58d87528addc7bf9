package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestLogRotator_WritesAndAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	r, err := NewLogRotator(RotatorConfig{Dir: dir, Name: "watch.log"})
	require.NoError(t, err)

	_, err = r.Write([]byte("first\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	r, err = NewLogRotator(RotatorConfig{Dir: dir, Name: "watch.log"})
	require.NoError(t, err)
	_, err = r.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(filepath.Join(dir, "watch.log"))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestLogRotator_RotatesAndKeepsBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, Name: "watch.log", MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	chunk := []byte(strings.Repeat("x", 600*1024))
	for i := 0; i < 6; i++ {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	names := listDir(t, dir)
	assert.Contains(t, names, "watch.log")
	assert.Len(t, names, 3, "current file plus two backups: %v", names)
}

func TestLogRotator_Compress(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, Name: "watch.log", MaxSizeMB: 1, Compress: true})
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	chunk := []byte(strings.Repeat("y", 700*1024))
	for i := 0; i < 2; i++ {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	var gz int
	for _, name := range listDir(t, dir) {
		if strings.HasSuffix(name, ".gz") {
			gz++
		}
	}
	assert.Equal(t, 1, gz)
}
