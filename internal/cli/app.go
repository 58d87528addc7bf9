// Package cli wires pastor's components for the command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/pastor/internal/application/usecase"
	"github.com/bnema/pastor/internal/cli/styles"
	"github.com/bnema/pastor/internal/domain/build"
	"github.com/bnema/pastor/internal/infrastructure/clipboard"
	"github.com/bnema/pastor/internal/infrastructure/codec"
	"github.com/bnema/pastor/internal/infrastructure/config"
	"github.com/bnema/pastor/internal/infrastructure/keyring"
	"github.com/bnema/pastor/internal/infrastructure/lock"
	"github.com/bnema/pastor/internal/infrastructure/persistence/filestore"
	"github.com/bnema/pastor/internal/infrastructure/xdg"
	"github.com/bnema/pastor/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	ConfigMgr *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Profile   build.Profile

	Paths   *xdg.Adapter
	DataDir string

	Store     *filestore.Store
	Keys      *keyring.KeyProvider
	Clipboard *clipboard.Adapter

	// Context with logger
	ctx     context.Context
	rotator *logging.LogRotator

	history *usecase.HistoryManager
	lock    *lock.Lock
}

// NewApp creates a new CLI application with all dependencies.
// Nothing here touches the credential store; the key is fetched on the
// first history load or save.
func NewApp() (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	logger := logging.NewFromConfigValues(logLevel(cfg), cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("using default configuration")
	}

	profile := build.CurrentProfile()
	paths := xdg.New(profile)
	historyFile, err := paths.HistoryFile()
	if err != nil {
		return nil, fmt.Errorf("resolve history file: %w", err)
	}
	dataDir := filepath.Dir(historyFile)

	cipherName, err := codec.ParseCipher(cfg.Storage.Cipher)
	if err != nil {
		return nil, fmt.Errorf("storage cipher: %w", err)
	}
	c, err := codec.New(cipherName)
	if err != nil {
		return nil, fmt.Errorf("create codec: %w", err)
	}

	keys := keyring.NewKeyProvider(keyring.New(), profile.KeyName())
	store := filestore.New(dataDir, filepath.Base(historyFile), c, keys)

	logger.Debug().
		Str("profile", string(profile)).
		Str("history_file", store.Path()).
		Str("cipher", string(c.Cipher())).
		Msg("cli initialized")

	return &App{
		Config:    cfg,
		ConfigMgr: mgr,
		Theme:     styles.NewTheme(),
		Profile:   profile,
		Paths:     paths,
		DataDir:   dataDir,
		Store:     store,
		Keys:      keys,
		Clipboard: clipboard.New(),
		ctx:       ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// History returns the history manager, loading the persisted history on
// first use. A missing history file is not reported.
func (a *App) History() (*usecase.HistoryManager, error) {
	if a.history == nil {
		a.history = usecase.NewHistoryManager(a.ctx, a.Store, config.ClampMaxItems(a.Config.History.MaxItems))
	}

	err := a.history.LoadErr()
	if errors.Is(err, fs.ErrNotExist) {
		return a.history, nil
	}
	return a.history, err
}

// LockHistory takes the instance lock for the lifetime of the App.
// It fails with lock.ErrLocked while a watcher is running.
func (a *App) LockHistory() error {
	if a.lock != nil {
		return nil
	}
	l, err := lock.Acquire(a.DataDir)
	if err != nil {
		return err
	}
	a.lock = l
	return nil
}

// EnableFileLog tees the logger into a size-rotated file in the state dir.
func (a *App) EnableFileLog() error {
	if a.rotator != nil {
		return nil
	}

	logDir, err := a.Paths.LogDir()
	if err != nil {
		return fmt.Errorf("resolve log dir: %w", err)
	}
	rotator, err := logging.NewLogRotator(logging.RotatorConfig{
		Dir:        logDir,
		MaxSizeMB:  a.Config.Logging.MaxSizeMB,
		MaxBackups: a.Config.Logging.MaxBackups,
		MaxAgeDays: a.Config.Logging.MaxAge,
		Compress:   true,
	})
	if err != nil {
		return err
	}

	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(logLevel(a.Config))
	if a.Config.Logging.Format == "json" {
		cfg.Format = "json"
	}
	a.rotator = rotator
	a.ctx = logging.WithContext(a.ctx, logging.NewWithFile(cfg, rotator))
	logging.FromContext(a.ctx).Debug().Str("path", rotator.Path()).Msg("file logging enabled")
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.lock != nil {
		errs = append(errs, a.lock.Release())
		a.lock = nil
	}
	if a.rotator != nil {
		errs = append(errs, a.rotator.Close())
		a.rotator = nil
	}
	return errors.Join(errs...)
}

// loadConfig loads configuration from standard locations, falling back to
// the defaults when the file cannot be used.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}

// logLevel lets PASTOR_LOG_LEVEL override the configured level even when
// the config file failed to load.
func logLevel(cfg *config.Config) string {
	if env := os.Getenv("PASTOR_LOG_LEVEL"); env != "" {
		return env
	}
	return cfg.Logging.Level
}
