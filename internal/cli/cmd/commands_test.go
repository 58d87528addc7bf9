package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestAddText(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"args joined", "ignored", []string{"hello", "world"}, "hello world"},
		{"stdin trailing newline dropped", "token\n", nil, "token"},
		{"stdin crlf dropped", "token\r\n", nil, "token"},
		{"stdin keeps inner newlines", "a\nb\n\n", nil, "a\nb\n"},
		{"empty stdin", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := addText(strings.NewReader(tt.stdin), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddText_ReadError(t *testing.T) {
	_, err := addText(failingReader{}, nil)
	assert.ErrorContains(t, err, "read stdin")
}

func TestDocsOutputDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_DATA_HOME", root)

	dir, err := docsOutputDir("man", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "man", "man1"), dir)

	dir, err = docsOutputDir("markdown", "")
	require.NoError(t, err)
	assert.Equal(t, "./docs", dir)

	dir, err = docsOutputDir("man", "/tmp/out")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", dir)

	_, err = docsOutputDir("html", "")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	want := []string{"about", "add", "clear", "config", "copy", "gen-docs", "list", "remove", "reset", "watch"}

	got := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, got[name], "missing command %s", name)
	}

	configSubs := make([]string, 0, 3)
	for _, c := range configCmd.Commands() {
		configSubs = append(configSubs, c.Name())
	}
	assert.ElementsMatch(t, []string{"path", "show", "schema"}, configSubs)
}

func TestCopyCommand_RejectsBadIndex(t *testing.T) {
	for _, arg := range []string{"-1", "first"} {
		err := runCopy(copyCmd, []string{arg})
		assert.ErrorContains(t, err, "invalid index")
	}
}

func TestRemoveCommand_RejectsBadID(t *testing.T) {
	err := runRemove(removeCmd, []string{"not-a-uuid"})
	assert.ErrorContains(t, err, "invalid entry id")
}
