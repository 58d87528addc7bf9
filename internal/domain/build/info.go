// Package build provides domain entities for build information.
package build

import "os"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Profile   Profile
}

// Profile separates release and development installations so their
// history files and encryption keys never collide.
type Profile string

const (
	ProfileRelease Profile = "release"
	ProfileDev     Profile = "dev"
)

// CurrentProfile returns ProfileDev when ENV=dev, ProfileRelease otherwise.
func CurrentProfile() Profile {
	if os.Getenv("ENV") == "dev" {
		return ProfileDev
	}
	return ProfileRelease
}

// HistoryFileName returns the name of the encrypted history file for the profile.
func (p Profile) HistoryFileName() string {
	if p == ProfileDev {
		return "clipboardfileDebug"
	}
	return "clipboardfile"
}

// KeyName returns the credential store account holding the profile's key.
func (p Profile) KeyName() string {
	if p == ProfileDev {
		return "com.pastor.encryptionKeyDebug"
	}
	return "com.pastor.encryptionKey"
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/pastor"
}
