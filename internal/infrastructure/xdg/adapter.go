// Package xdg resolves pastor's file locations under the XDG base directories.
package xdg

import (
	"os"
	"path/filepath"

	"github.com/bnema/pastor/internal/application/port"
	"github.com/bnema/pastor/internal/domain/build"
	"github.com/bnema/pastor/internal/infrastructure/config"
)

// Adapter implements port.Paths for one build profile.
type Adapter struct {
	profile build.Profile
}

// New creates a paths adapter for profile.
func New(profile build.Profile) *Adapter {
	return &Adapter{profile: profile}
}

func (a *Adapter) ConfigFile() (string, error) {
	return config.GetConfigFile()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) LogDir() (string, error) {
	return config.GetLogDir()
}

// HistoryFile returns the history file of the adapter's profile. Release
// and dev builds never share one.
func (a *Adapter) HistoryFile() (string, error) {
	dataDir, err := a.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, a.profile.HistoryFileName()), nil
}

// ManDir returns the user's section 1 man page directory,
// XDG_DATA_HOME/man/man1, where 'man pastor' finds pages without MANPATH.
func (a *Adapter) ManDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "man", "man1"), nil
}

var _ port.Paths = (*Adapter)(nil)
