package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/pastor/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager for the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading configDir/config.toml.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config") // Name without extension
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// Environment overrides, e.g. PASTOR_HISTORY_MAX_ITEMS
	v.SetEnvPrefix("PASTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging keeps the short names also read by logging.NewFromEnv
	if err := v.BindEnv("logging.level", "PASTOR_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PASTOR_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PASTOR_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PASTOR_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.ConfigFile(),
			err,
		)
	}
	return config, nil
}

// normalizeConfig clamps numeric settings into range and canonicalizes names.
// Out-of-range values are corrected rather than rejected.
func normalizeConfig(config *Config) {
	config.History.MaxItems = ClampMaxItems(config.History.MaxItems)

	switch {
	case config.Clipboard.PollIntervalMs <= 0:
		config.Clipboard.PollIntervalMs = defaultPollIntervalMs
	case config.Clipboard.PollIntervalMs < minPollIntervalMs:
		config.Clipboard.PollIntervalMs = minPollIntervalMs
	case config.Clipboard.PollIntervalMs > maxPollIntervalMs:
		config.Clipboard.PollIntervalMs = maxPollIntervalMs
	}

	config.Storage.Cipher = strings.ToLower(strings.TrimSpace(config.Storage.Cipher))
	if config.Storage.Cipher == "" {
		config.Storage.Cipher = defaultCipher
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
	if config.Logging.MaxSizeMB <= 0 {
		config.Logging.MaxSizeMB = defaultMaxLogSizeMB
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path to the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, "config.toml")
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, "config.toml")

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	log := logging.NewFromEnv()
	log.Info().Str("path", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("history.max_items", defaults.History.MaxItems)
	m.viper.SetDefault("clipboard.poll_interval_ms", defaults.Clipboard.PollIntervalMs)
	m.viper.SetDefault("storage.cipher", defaults.Storage.Cipher)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
}
