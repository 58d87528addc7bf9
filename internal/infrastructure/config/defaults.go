package config

import "time"

// Default configuration constants
const (
	// History bounds
	MinMaxItems     = 20
	MaxMaxItems     = 1000
	DefaultMaxItems = 20

	// Clipboard polling bounds
	minPollIntervalMs     = 100
	maxPollIntervalMs     = 60000
	defaultPollIntervalMs = 1000

	defaultCipher = "aes-256-gcm"

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10 // megabytes
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7 // days
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		History: HistoryConfig{
			MaxItems: DefaultMaxItems,
		},
		Clipboard: ClipboardConfig{
			PollIntervalMs: defaultPollIntervalMs,
		},
		Storage: StorageConfig{
			Cipher: defaultCipher,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
		},
	}
}

// PollInterval returns the clipboard polling period.
func (c ClipboardConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// ClampMaxItems bounds n to the operator-visible MinMaxItems..MaxMaxItems range.
func ClampMaxItems(n int) int {
	return min(max(n, MinMaxItems), MaxMaxItems)
}
