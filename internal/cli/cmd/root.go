// Package cmd provides Cobra CLI commands for pastor.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/pastor/internal/cli"
	"github.com/bnema/pastor/internal/domain/build"
	"github.com/bnema/pastor/internal/infrastructure/lock"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "pastor",
		Short: "An encrypted clipboard history for the terminal",
		Long: `Pastor - a clipboard history that remembers what you copied.

Pastor watches the system clipboard and keeps the most recent distinct
texts, newest first. The history is sealed with an authenticated cipher
and the key lives in your OS credential store, never next to the file.

Features:
  - Wayland (wl-clipboard) and X11 (xclip, xsel) support
  - Duplicate copies are promoted instead of stored twice
  - AES-256-GCM or XChaCha20-Poly1305 encrypted history file
  - Transparent migration of legacy plaintext-list history files
  - Hot-reloaded history size from config.toml

Run 'pastor watch' to start recording, then 'pastor list' and
'pastor copy <index>' to get things back.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			app.BuildInfo.Profile = app.Profile
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		msg := err.Error()
		if app != nil {
			msg = app.Theme.ErrorMessage(msg)
			_ = app.Close()
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// requireApp returns the initialized app or an error for commands that
// were run without PersistentPreRunE.
func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, errors.New("app not initialized")
	}
	return a, nil
}

// lockedApp returns the app holding the instance lock, for commands that
// write the history file.
func lockedApp() (*cli.App, error) {
	a, err := requireApp()
	if err != nil {
		return nil, err
	}
	if err := a.LockHistory(); err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, fmt.Errorf("%w; stop it before changing the history", err)
		}
		return nil, fmt.Errorf("lock history: %w", err)
	}
	return a, nil
}
